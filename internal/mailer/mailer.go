// Package mailer šalje transakcione email poruke. Podržana su dva
// transporta: Brevo HTTP API i klasičan SMTP.
package mailer

import "context"

// Address je par email adrese i prikazanog imena.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Message je jedna poruka spremna za slanje, nezavisna od transporta.
type Message struct {
	From     Address
	To       []Address
	ReplyTo  *Address
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender šalje jednu poruku. Vraća ID poruke ako ga transport daje.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
