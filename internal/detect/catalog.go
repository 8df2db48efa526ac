// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect maps project keywords, dependencies, source files, and
// README metadata onto a fixed catalog of canonical technology names,
// recording the provenance of every match.
package detect

// catalog maps lowercase match keys to canonical technology names. The
// table is read-only; there is no registration path.
var catalog = map[string]string{
	"numpy":         "NumPy",
	"pandas":        "Pandas",
	"matplotlib":    "Matplotlib",
	"scipy":         "SciPy",
	"sklearn":       "Scikit-learn",
	"scikit-learn":  "Scikit-learn",
	"tensorflow":    "TensorFlow",
	"torch":         "PyTorch",
	"pytorch":       "PyTorch",
	"pydantic":      "Pydantic",
	"fastapi":       "FastAPI",
	"flask":         "Flask",
	"django":        "Django",
	"streamlit":     "Streamlit",
	"mcp":           "Model Context Protocol",
	"hatch":         "Hatch",
	"pytest":        "pytest",
	"transformers":  "Hugging Face Transformers",
	"lstm":          "LSTM Networks",
	"cnn":           "Convolutional Neural Networks",
	"random forest": "Random Forest",
	"xgboost":       "XGBoost",
}

// CatalogSize returns the number of match keys in the catalog.
func CatalogSize() int {
	return len(catalog)
}

// CanonicalName returns the canonical technology name for a match key,
// or "" when the key is not in the catalog.
func CanonicalName(key string) string {
	return catalog[key]
}
