package smtp

import "errors"

var (
	// ErrAuth indicates the relay rejected the sender credentials.
	ErrAuth = errors.New("smtp: authentication failed")

	// ErrTransport indicates the connection could not be established or timed out.
	ErrTransport = errors.New("smtp: connection failed")

	// ErrDelivery indicates the relay rejected the message or a recipient.
	ErrDelivery = errors.New("smtp: delivery rejected")

	// ErrInvalidMessage indicates the message could not be built from the email.
	ErrInvalidMessage = errors.New("smtp: invalid message")
)
