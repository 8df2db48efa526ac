// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds metadata for a recommended research paper. Catalog entries
// are literal values and are never mutated.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is a short summary of the paper.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords lists the paper's topic keywords.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// URL points to the paper's landing page.
	URL string `json:"url" yaml:"url"`

	// Accuracy is a reported headline accuracy from the paper, as a
	// fraction in [0,1]. Zero means not reported.
	Accuracy float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`

	// Upvotes is the community score at catalog time.
	Upvotes int `json:"upvotes,omitempty" yaml:"upvotes,omitempty"`
}

// SuggestionCategory groups improvement suggestions in report output.
type SuggestionCategory string

const (
	CategoryPerformance SuggestionCategory = "performance"
	CategoryIntegration SuggestionCategory = "integration"
	CategoryResearch    SuggestionCategory = "research"
	CategoryEvaluation  SuggestionCategory = "evaluation"
)

// Suggestion is an improvement suggestion tied to a detected technology or
// research-metadata finding. The category is cosmetic grouping only.
type Suggestion struct {
	// Text is the suggestion itself.
	Text string `json:"text" yaml:"text"`

	// Category tags the suggestion for report grouping.
	Category SuggestionCategory `json:"category" yaml:"category"`
}
