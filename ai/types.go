package ai

// Sentiment labels produced by sentiment classifiers.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

// Intent labels used for engagement classification.
const (
	IntentProblemStatement      = "problem statement"
	IntentSeekingRecommendation = "seeking recommendation"
	IntentDiscussion            = "discussion"
	IntentOffTopic              = "off-topic"
)

// DefaultIntentLabels is the candidate label set used when callers do not
// supply their own. Classifiers score text against each label.
var DefaultIntentLabels = []string{
	IntentProblemStatement,
	IntentSeekingRecommendation,
	IntentDiscussion,
	IntentOffTopic,
}
