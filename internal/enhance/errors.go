package enhance

import "fmt"

// UnsupportedSectionError indicates a section the coach has no instructions for.
type UnsupportedSectionError struct {
	Section string
}

func (e *UnsupportedSectionError) Error() string {
	return fmt.Sprintf("unsupported section %q: use 'summary' or 'experience'", e.Section)
}

// ShortResultError indicates the model returned an empty or implausibly short
// enhancement. This is a quality gate, not a transport failure.
type ShortResultError struct {
	Length int
}

func (e *ShortResultError) Error() string {
	return fmt.Sprintf("enhancement result too short (%d characters)", e.Length)
}

// APICallError represents an error from the Gemini API
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
