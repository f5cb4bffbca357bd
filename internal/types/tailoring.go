// Package types provides type definitions for structured data used throughout the jobfit-server system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Improvement types logged by the tailoring engine
const (
	ImprovementKeywordAdded     = "keyword_added"
	ImprovementBulletReordered  = "bullet_reordered"
	ImprovementMetricEnhanced   = "metric_enhanced"
	ImprovementSectionOptimized = "section_optimized"
)

// Improvement records a single change made while tailoring a resume
// to a job description. Immutable after creation.
type Improvement struct {
	Type      string `json:"type"`
	Section   string `json:"section"`
	Original  string `json:"original"`
	Improved  string `json:"improved"`
	Reasoning string `json:"reasoning"`
}

// TailoredContent is the result of a tailoring run: a rewritten resume
// plus the log of changes that produced it.
type TailoredContent struct {
	TailoredContent *ParsedResume `json:"tailoredContent"`
	Improvements    []Improvement `json:"improvements"`
}
