// Package types provides type definitions for structured data used throughout the jobfit-server system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RoleRecommendation represents a scored job archetype match for a resume
type RoleRecommendation struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	FitScore       int      `json:"fitScore"`
	SemanticScore  int      `json:"semanticScore"`
	KeywordScore   int      `json:"keywordScore"`
}
