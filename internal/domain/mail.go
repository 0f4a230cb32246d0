package domain

// MailMessage is one transactional e-mail. Text and HTML are alternative
// bodies of the same content; either may be empty.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}
