// Package parsing provides functionality to parse free-form resume text into
// structured ParsedResume JSON using LLM extraction.
package parsing

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-manager/internal/llm"
	"github.com/jonathan/resume-manager/internal/prompts"
	"github.com/jonathan/resume-manager/internal/types"
)

//go:embed parsed_resume.schema.json
var parsedResumeSchema []byte

// ParseResume extracts a structured ParsedResume from raw resume text.
// The model response has its markdown fences stripped, is decoded as JSON and
// then validated against the ParsedResume schema before it is returned.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*types.ParsedResume, error) {
	prompt := BuildParsePrompt(resumeText)

	responseText, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	// Clean markdown code blocks if present
	responseText = llm.CleanJSONBlock(responseText)

	if err := validateAgainstSchema(responseText); err != nil {
		return nil, err
	}

	return parseJSONResponse(responseText)
}

// BuildParsePrompt constructs the extraction prompt for raw resume text.
func BuildParsePrompt(resumeText string) string {
	template := prompts.MustGet(prompts.KeyParseResume)
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}

// parseJSONResponse parses the JSON response into a ParsedResume
func parseJSONResponse(jsonText string) (*types.ParsedResume, error) {
	var parsed types.ParsedResume
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	// Missing fields come back as empty values, matching the prompt contract
	if parsed.Experience == nil {
		parsed.Experience = []types.ExperienceItem{}
	}
	if parsed.Education == nil {
		parsed.Education = []types.EducationItem{}
	}
	if parsed.Skills == nil {
		parsed.Skills = []string{}
	}

	return &parsed, nil
}

// validateAgainstSchema checks the response document shape before decoding.
// Model output format is not contractually guaranteed.
func validateAgainstSchema(jsonText string) error {
	schemaLoader := gojsonschema.NewBytesLoader(parsedResumeSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ParseError{
			Message: "failed to validate JSON response",
			Cause:   err,
		}
	}

	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return &ParseError{
			Message: fmt.Sprintf("response does not match resume schema: %s", sb.String()),
		}
	}
	return nil
}
