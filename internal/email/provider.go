package email

// Message is a plain outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider abstracts the email-sending service. Delivery mechanics are an
// external collaborator; business code only composes messages.
type Provider interface {
	// Send delivers a single message.
	Send(msg *Message) error

	// SendVerification delivers the account-verification link.
	SendVerification(to, verifyURL string) error
}
