package models

// MailMessage is one outbound message handed to the mail relay adapter.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
