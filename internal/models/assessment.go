package models

type AssessmentStatus string

const (
	AssessmentActive   AssessmentStatus = "active"
	AssessmentDraft    AssessmentStatus = "draft"
	AssessmentArchived AssessmentStatus = "archived"
)

type Assessment struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"` // technical, aptitude, portfolio
	Duration    string           `json:"duration"`
	Questions   int              `json:"questions"`
	Candidates  int              `json:"candidates"`
	AvgScore    int              `json:"avg_score"`
	Status      AssessmentStatus `json:"status"`
	CreatedDate string           `json:"created_date"`
}

type ResultStatus string

const (
	ResultCompleted  ResultStatus = "completed"
	ResultInProgress ResultStatus = "in-progress"
)

// AssessmentResult distinguishes completed from in-progress attempts
// explicitly: Score and CompletedDate are set exactly when Status is
// ResultCompleted.
type AssessmentResult struct {
	ID             string       `json:"id"`
	CandidateName  string       `json:"candidate_name"`
	AssessmentName string       `json:"assessment_name"`
	Status         ResultStatus `json:"status"`
	Score          *int         `json:"score,omitempty"`
	CompletedDate  *string      `json:"completed_date,omitempty"`
}
