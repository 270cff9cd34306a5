package models

// VideoInterview covers both live and recorded sessions. AIScore and
// Sentiment are nil until the recording has been analyzed.
type VideoInterview struct {
	ID            string  `json:"id"`
	CandidateName string  `json:"candidate_name"`
	Position      string  `json:"position"`
	Type          string  `json:"type"` // recorded, live
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Duration      string  `json:"duration"`
	AIScore       *int    `json:"ai_score,omitempty"`
	Sentiment     *string `json:"sentiment,omitempty"`
}

type SentimentPoint struct {
	Time      string `json:"time"`
	Sentiment string `json:"sentiment"`
}

type BehavioralMetrics struct {
	Confidence int `json:"confidence"`
	Clarity    int `json:"clarity"`
	Enthusiasm int `json:"enthusiasm"`
}

// VideoInsights is the analysis attached to a completed recording.
type VideoInsights struct {
	InterviewID       string            `json:"interview_id"`
	SentimentTimeline []SentimentPoint  `json:"sentiment_timeline"`
	BehavioralMetrics BehavioralMetrics `json:"behavioral_metrics"`
	Keywords          []string          `json:"keywords"`
}
