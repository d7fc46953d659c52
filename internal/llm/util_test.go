package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"name\": \"Ada\"}\n```",
			expected: `{"name": "Ada"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"name\": \"Ada\"}\n```",
			expected: `{"name": "Ada"}`,
		},
		{
			name:     "code block with language tag",
			input:    "```javascript\n{\"name\": \"Ada\"}\n```",
			expected: `{"name": "Ada"}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"name": "Ada"}`,
			expected: `{"name": "Ada"}`,
		},
		{
			name:     "plain prose untouched",
			input:    "no fences here",
			expected: "no fences here",
		},
		{
			name:     "surrounding whitespace",
			input:    "\n  ```json\n{\"a\": 1}\n```  \n",
			expected: `{"a": 1}`,
		},
		{
			name:     "multiline body",
			input:    "```json\n{\n  \"skills\": [\"Go\"]\n}\n```",
			expected: "{\n  \"skills\": [\"Go\"]\n}",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
