// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// technologySuggestions maps canonical technology names to improvement
// suggestions. The table is frozen; misses yield nothing.
var technologySuggestions = map[string]types.Suggestion{
	"NumPy": {
		Text:     "Consider numpy.vectorize or broadcasting to replace explicit loops",
		Category: types.CategoryPerformance,
	},
	"Pandas": {
		Text:     "Use DataFrame.query() and eval() for faster frame operations",
		Category: types.CategoryPerformance,
	},
	"Model Context Protocol": {
		Text:     "MCP detected: consider integrating additional services through MCP",
		Category: types.CategoryIntegration,
	},
	"TensorFlow": {
		Text:     "Enable tf.function tracing on hot training loops",
		Category: types.CategoryPerformance,
	},
	"PyTorch": {
		Text:     "Profile DataLoader workers; input pipelines often dominate step time",
		Category: types.CategoryPerformance,
	},
	"Scikit-learn": {
		Text:     "Wrap preprocessing and estimators in a Pipeline to avoid leakage",
		Category: types.CategoryEvaluation,
	},
}

// baselineSuggestions are always appended, independent of detection.
var baselineSuggestions = []types.Suggestion{
	{
		Text:     "Add k-fold cross-validation to model evaluation",
		Category: types.CategoryEvaluation,
	},
	{
		Text:     "Implement early stopping to avoid overfitting",
		Category: types.CategoryEvaluation,
	},
}

// Suggestions builds the improvement suggestions for an analysis:
// technology-keyed entries first (parameterized with a matched paper's
// reported accuracy when one exists), then research-metadata findings,
// then the baseline entries. Always returns a non-nil slice.
func Suggestions(a *types.ProjectAnalysis, matched []types.Paper) []types.Suggestion {
	suggestions := []types.Suggestion{}

	for _, tech := range a.Technologies {
		s, ok := technologySuggestions[tech.Name]
		if !ok {
			continue
		}
		if acc := accuracyFor(tech.Name, matched); acc > 0 {
			s.Text = fmt.Sprintf("%s (reported accuracy %.0f%% in matched literature)", s.Text, acc*100)
		}
		suggestions = append(suggestions, s)
	}

	if rm := a.ResearchMetadata; rm != nil {
		if n := len(rm.ResearchQuestions); n > 0 {
			suggestions = append(suggestions, types.Suggestion{
				Text:     fmt.Sprintf("%d research questions identified: design an experiment for each", n),
				Category: types.CategoryResearch,
			})
		}
		if n := len(rm.Goals); n > 0 {
			suggestions = append(suggestions, types.Suggestion{
				Text:     fmt.Sprintf("%d goals defined: attach a measurable metric to each", n),
				Category: types.CategoryResearch,
			})
		}
		if len(rm.Methodology) > 0 {
			suggestions = append(suggestions, types.Suggestion{
				Text:     "Methodology is defined: record results for every stage",
				Category: types.CategoryResearch,
			})
		}
	}

	return append(suggestions, baselineSuggestions...)
}

// accuracyFor returns the reported accuracy of the first matched paper
// whose keywords mention the technology, or 0.
func accuracyFor(tech string, matched []types.Paper) float64 {
	for _, p := range matched {
		if p.Accuracy == 0 {
			continue
		}
		for _, kw := range p.Keywords {
			if kw == tech {
				return p.Accuracy
			}
		}
	}
	return 0
}
