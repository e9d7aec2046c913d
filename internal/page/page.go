package page

import (
	"context"
	"net/url"
)

// Labels and messages shown by the page.
const (
	EmptyURLAlert     string = "Please enter a URL"
	ShortenFailAlert  string = "Failed to shorten URL"
	CopiedLabel       string = "Copied!"
	CopyLabel         string = "Copy"
	CodeQueryParamKey string = "c"
)

// Mode is the page state chosen once at load.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeRedirect
)

func (m Mode) String() string {
	switch m {
	case ModeRedirect:
		return "redirect"
	default:
		return "interactive"
	}
}

// ShortenRequest is the body of POST <API_BASE>/urls.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse is the answer of POST <API_BASE>/urls.
type ShortenResponse struct {
	Code string `json:"code"`
}

// ResolveResponse is the answer of GET <API_BASE>/urls/<code>.
// URL may be empty when the service does not know the code.
type ResolveResponse struct {
	URL string `json:"url"`
}

// Document is the set of page elements the controller drives.
type Document interface {
	// InputURL returns the raw value of the #url field.
	InputURL() string
	// SetShortenedURL writes the #shortened-url field.
	SetShortenedURL(value string)
	// ShowShortenedURLContainer switches .shortened-url-container to a flex layout.
	ShowShortenedURLContainer()
	// SelectShortenedURL selects the text of the #shortened-url field.
	SelectShortenedURL()
	SetCopyButtonLabel(label string)
	SetSubmitEnabled(enabled bool)
	// Alert shows a blocking message to the user.
	Alert(message string)

	BindSubmit(handler func(ctx context.Context))
	BindCopy(handler func(ctx context.Context))
}

// Clipboard copies the current selection.
type Clipboard interface {
	CopySelection() error
}

// Location is the address of the hosting page.
type Location interface {
	// Origin returns scheme://host of the page without a trailing slash.
	Origin() string
	Query() url.Values
	// Assign navigates the page to rawURL.
	Assign(rawURL string)
}

// BuildShortURL returns <origin>?c=<code>.
func BuildShortURL(origin, code string) string {
	v := url.Values{}
	v.Set(CodeQueryParamKey, code)
	return origin + "?" + v.Encode()
}
