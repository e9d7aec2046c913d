package page

import "errors"

var (
	ErrEmptyURL      = errors.New("empty URL")
	ErrEmptyCode     = errors.New("empty short code in response")
	ErrShortenURL    = errors.New("failed to shorten URL")
	ErrRedirectToURL = errors.New("failed to redirect to URL")
)

// NetworkError hides the cause of a failed call behind a generic message.
// Both the message and the cause are reachable through errors.Is.
type NetworkError struct {
	Msg error
	Err error
}

func (ne *NetworkError) Error() string {
	return ne.Msg.Error()
}

func (ne *NetworkError) Unwrap() []error {
	return []error{ne.Msg, ne.Err}
}

func NewNetworkError(msg, err error) error {
	return &NetworkError{
		Msg: msg,
		Err: err,
	}
}
