package entity

// EmailMessage is a single transactional email to one recipient.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
