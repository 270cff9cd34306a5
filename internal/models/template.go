package models

type TemplateChannel string

const (
	ChannelEmail    TemplateChannel = "email"
	ChannelSMS      TemplateChannel = "sms"
	ChannelWhatsApp TemplateChannel = "whatsapp"
)

func (c TemplateChannel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp:
		return true
	}
	return false
}

// Template is a reusable communication template whose content carries
// {{placeholder}} tokens resolved at send time.
type Template struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Channel  TemplateChannel `json:"channel"`
	Subject  string          `json:"subject,omitempty"`
	Content  string          `json:"content"`
	Category string          `json:"category"`
	Usage    int             `json:"usage"`
}

// Placeholders is the catalog of tokens offered by the template editor.
var Placeholders = []string{
	"{{candidate.name}}",
	"{{candidate.email}}",
	"{{job.title}}",
	"{{company.name}}",
	"{{recruiter.name}}",
	"{{interview.date}}",
	"{{interview.time}}",
	"{{interview.link}}",
	"{{review.timeframe}}",
}
