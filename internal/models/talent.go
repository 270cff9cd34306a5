package models

type TalentAvailability string

const (
	TalentAvailable    TalentAvailability = "available"
	TalentPassive      TalentAvailability = "passive"
	TalentNotAvailable TalentAvailability = "not-available"
)

// TalentPoolEntry is a sourced candidate kept on file independently of
// any open position.
type TalentPoolEntry struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Title                string             `json:"title"`
	Location             string             `json:"location"`
	Experience           string             `json:"experience"`
	Skills               []string           `json:"skills"`
	Tags                 []string           `json:"tags"`
	LastActive           string             `json:"last_active"`
	AIScore              int                `json:"ai_score"`
	Availability         TalentAvailability `json:"availability"`
	PreviousApplications []string           `json:"previous_applications"`
}
