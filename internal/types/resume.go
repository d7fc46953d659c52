// Package types provides type definitions for structured data used throughout the resume-manager system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// YearRange represents the start and end years of a position or program.
// End is nil for ongoing roles.
type YearRange struct {
	Start int  `json:"start"`
	End   *int `json:"end"`
}

// ExperienceItem represents one work experience entry on a resume.
type ExperienceItem struct {
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Year        YearRange `json:"year"`
}

// EducationItem represents one education entry on a resume.
type EducationItem struct {
	Degree string    `json:"degree"`
	Field  string    `json:"field"`
	Year   YearRange `json:"year"`
}

// Resume represents a stored resume record, addressed by its caller-supplied ID.
// CreatedAt and UpdatedAt are assigned by the repository, never by the caller.
// The JSON field names match the frontend contract (camelCase timestamps).
type Resume struct {
	ID         string           `json:"id" validate:"required,min=1"`
	Title      string           `json:"title"`
	Name       string           `json:"name" validate:"required,min=1"`
	Summary    string           `json:"summary"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []string         `json:"skills"`
	Suggestion string           `json:"suggestion"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ParsedResume is the structured result of LLM extraction from free-form resume
// text. It carries no identity or timestamps; those belong to stored records.
type ParsedResume struct {
	Name       string           `json:"name"`
	Summary    string           `json:"summary"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []string         `json:"skills"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
