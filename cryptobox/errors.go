package cryptobox

import "errors"

var (
	ErrNoRecipients      = errors.New("cryptobox: no recipients")
	ErrTooManyRecipients = errors.New("cryptobox: too many recipients")
	ErrAuthTagInvalid    = errors.New("cryptobox: AEAD authentication failed")
	ErrNotARecipient     = errors.New("cryptobox: private key is not a recipient of this envelope")
	ErrMalformedPayload  = errors.New("cryptobox: decrypted payload is not a well-formed transaction")
	ErrRngFailure        = errors.New("cryptobox: random number generator failure")
)
