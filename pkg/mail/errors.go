package mail

import "errors"

var (
	// ErrNoRecipient indicates the message has no To recipient.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrNoBody indicates the message has neither a text nor an HTML body.
	ErrNoBody = errors.New("message must have a text or HTML body")

	// ErrAttachmentNotFound indicates an attachment path does not point to a readable file.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrInvalidRecipient indicates a recipient address is malformed or not
	// acceptable for the requested delivery domain.
	ErrInvalidRecipient = errors.New("invalid recipient address")

	// ErrAuthFailed indicates the SMTP server rejected the credentials.
	ErrAuthFailed = errors.New("smtp authentication failed")

	// ErrConnectFailed indicates the SMTP session could not be established.
	ErrConnectFailed = errors.New("smtp connection failed")
)
