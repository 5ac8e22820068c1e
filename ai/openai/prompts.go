package openai

import (
	"fmt"
	"strings"
)

const sentimentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "label": {
      "type": "string",
      "enum": ["positive", "negative"]
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    }
  },
  "required": ["label", "confidence"],
  "additionalProperties": false
}`

const sentimentPromptTemplate = `Classify the sentiment of the given social media post and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The label must be exactly "positive" or "negative".
- Confidence is a number from 0 (a guess) to 1 (certain).
- Judge the overall tone of the post, not individual words.
- Frustration, complaints, and problem descriptions are negative even when phrased politely.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "finally found a grinder that doesn't clog, love it"
Output:
{"label":"positive","confidence":0.95}

Example (complaint phrased politely):
Input: "has anyone else had their machine leak after a month? kind of disappointed"
Output:
{"label":"negative","confidence":0.85}`

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "scores": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "label": {
            "type": "string"
          },
          "confidence": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          }
        },
        "required": ["label", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["scores"],
  "additionalProperties": false
}`

const intentPromptTemplate = `Score the given social media post against each candidate intent label and return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Score every one of these labels exactly once: %s.
- Use the label strings verbatim; do not invent new labels.
- Confidence is a number from 0 (does not fit) to 1 (fits perfectly); scores need not sum to 1.
- Order the scores from highest confidence to lowest.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example (labels: problem statement, seeking recommendation, discussion, off-topic):
Input: "my espresso machine keeps tripping the breaker, what should i replace it with?"
Output:
{
  "scores": [
    {"label":"seeking recommendation","confidence":0.82},
    {"label":"problem statement","confidence":0.74},
    {"label":"discussion","confidence":0.2},
    {"label":"off-topic","confidence":0.02}
  ]
}`

// buildSentimentPrompt creates the system prompt for sentiment classification.
func buildSentimentPrompt() string {
	return fmt.Sprintf(sentimentPromptTemplate, sentimentResponseSchema)
}

// buildIntentPrompt creates the system prompt with the candidate labels embedded.
func buildIntentPrompt(labels []string) string {
	return fmt.Sprintf(intentPromptTemplate, intentResponseSchema, strings.Join(labels, ", "))
}
