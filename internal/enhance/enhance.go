// Package enhance provides AI-assisted rewriting of resume sections and
// improvement suggestions for resume content.
package enhance

import (
	"context"
	"strings"

	"github.com/jonathan/resume-manager/internal/llm"
	"github.com/jonathan/resume-manager/internal/prompts"
)

// Sections the coach knows how to improve.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
)

// minResultLength is the quality gate for enhancement output.
const minResultLength = 10

// BuildEnhancePrompt constructs the section-specific coaching prompt.
// Returns *UnsupportedSectionError for sections other than summary/experience.
func BuildEnhancePrompt(section, content string) (string, error) {
	var key string
	switch section {
	case SectionSummary:
		key = prompts.KeyEnhanceSummary
	case SectionExperience:
		key = prompts.KeyEnhanceExperience
	default:
		return "", &UnsupportedSectionError{Section: section}
	}

	template := prompts.MustGet(key)
	return prompts.Format(template, map[string]string{
		"Content": content,
	}), nil
}

// BuildSuggestionsPrompt constructs the improvement-suggestions prompt.
// The response is meant for direct display, so the prompt asks for 1-2 short
// paragraphs of concrete advice rather than structured output.
func BuildSuggestionsPrompt(content string) string {
	template := prompts.MustGet(prompts.KeySuggestions)
	return prompts.Format(template, map[string]string{
		"Content": content,
	})
}

// EnhanceSection rewrites one resume section through the LLM.
// The trimmed result must clear the quality gate or *ShortResultError is
// returned.
func EnhanceSection(ctx context.Context, client llm.Client, section, content string) (string, error) {
	prompt, err := BuildEnhancePrompt(section, content)
	if err != nil {
		return "", err
	}

	responseText, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	enhanced := strings.TrimSpace(responseText)
	if len(enhanced) < minResultLength {
		return "", &ShortResultError{Length: len(enhanced)}
	}
	return enhanced, nil
}

// Suggest produces display-ready improvement suggestions for resume content.
func Suggest(ctx context.Context, client llm.Client, content string) (string, error) {
	prompt := BuildSuggestionsPrompt(content)

	responseText, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	return strings.TrimSpace(responseText), nil
}
