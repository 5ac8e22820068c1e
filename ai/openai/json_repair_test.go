package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid JSON untouched",
			input:    `{"label": "positive", "confidence": 0.9}`,
			expected: `{"label": "positive", "confidence": 0.9}`,
		},
		{
			name:     "missing opening quote on first key",
			input:    `{label": "positive"}`,
			expected: `{"label": "positive"}`,
		},
		{
			name:     "missing opening quote after comma",
			input:    `{"label": "positive", confidence": 0.9}`,
			expected: `{"label": "positive", "confidence": 0.9}`,
		},
		{
			name:     "fully bare key",
			input:    `{label: "negative", confidence: 0.4}`,
			expected: `{"label": "negative", "confidence": 0.4}`,
		},
		{
			name:     "braces inside string values untouched",
			input:    `{"label": "odd {text, here"}`,
			expected: `{"label": "odd {text, here"}`,
		},
		{
			name:     "nested objects",
			input:    `{"scores": [{label": "discussion", "confidence": 0.2}]}`,
			expected: `{"scores": [{"label": "discussion", "confidence": 0.2}]}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repairJSON(tt.input))
		})
	}
}

func TestScrubString(t *testing.T) {
	assert.Equal(t, "positive", scrubString(`"positive".`))
	assert.Equal(t, "seeking recommendation", scrubString("  seeking   recommendation \n"))
	assert.Equal(t, "", scrubString("  ...  "))
}
