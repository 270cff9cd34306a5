package models

type IntegrationStatus string

const (
	IntegrationConnected IntegrationStatus = "connected"
	IntegrationAvailable IntegrationStatus = "available"
)

type Integration struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Features    []string          `json:"features"`
	Status      IntegrationStatus `json:"status"`
	Settings    map[string]bool   `json:"settings,omitempty"`
}

// DefaultIntegrationSettings returns the settings installed when an
// integration in the given category is first connected.
func DefaultIntegrationSettings(category string) map[string]bool {
	switch category {
	case "hris":
		return map[string]bool{"autoSync": true, "syncNewHires": true, "syncEmployeeData": false}
	case "calendar":
		return map[string]bool{"autoCalendarSync": true, "reminderEmails": true, "videoMeetings": true}
	default:
		return map[string]bool{}
	}
}
