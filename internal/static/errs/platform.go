package errs

import "errors"

var (
	ChallengeNotFound = errors.New("challenge not found")
	AttemptNotFound   = errors.New("attempt not found")
	AccessDenied      = errors.New("access denied")

	// ValidationFailed covers missing code/language/challenge id on run/submit
	// and malformed challenge payloads; the request is rejected with no side
	// effects.
	ValidationFailed = errors.New("validation failed")

	// WindowExpired is returned when a submission arrives after the
	// candidate's server-recorded attempt window has closed.
	WindowExpired = errors.New("attempt window expired")

	// ChallengeExpired is returned when the challenge's global deadline passed.
	ChallengeExpired = errors.New("challenge expired")
)
