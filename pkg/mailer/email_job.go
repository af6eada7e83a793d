package mailer

// Template names understood by the email worker.
const (
	TemplateWelcome     = "welcome"
	TemplateDeactivated = "deactivated"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Subject/Text/HTML may be provided directly, or a Template plus Data for
// worker-side rendering.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
