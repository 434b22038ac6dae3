package service

import "errors"

var (
	// ErrIdentityNotEnrolled is returned by [SessionService.Open] when the
	// wallet has no identity under the requested label.
	ErrIdentityNotEnrolled = errors.New("identity not enrolled")

	// ErrSessionClosed is returned by ledger calls made after the session was
	// closed.
	ErrSessionClosed = errors.New("session is closed")

	ErrJournalDisabled = errors.New("journal is disabled")
)
