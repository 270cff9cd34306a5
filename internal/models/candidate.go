package models

type CandidateStatus string

const (
	CandidateApplied   CandidateStatus = "applied"
	CandidateScreening CandidateStatus = "screening"
	CandidateInterview CandidateStatus = "interview"
	CandidateHired     CandidateStatus = "hired"
	CandidateRejected  CandidateStatus = "rejected"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateApplied, CandidateScreening, CandidateInterview, CandidateHired, CandidateRejected:
		return true
	}
	return false
}

type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Status     CandidateStatus `json:"status"`
	AIScore    int             `json:"ai_score"`
	Experience string          `json:"experience"`
	Skills     []string        `json:"skills"`
}
