package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MisterMaks/go-shortener-page/internal/page"
)

var ErrNothingSelected = errors.New("nothing selected")

// requestDocument is the page state of one HTTP request. The template
// renders it after the controller has run.
type requestDocument struct {
	inputURL         string
	shortenedURL     string
	containerVisible bool
	selected         bool
	copyLabel        string
	submitDisabled   bool
	alert            string

	onSubmit func(ctx context.Context)
	onCopy   func(ctx context.Context)
}

func newRequestDocument() *requestDocument {
	return &requestDocument{copyLabel: page.CopyLabel}
}

func (d *requestDocument) InputURL() string { return d.inputURL }

func (d *requestDocument) SetShortenedURL(value string) { d.shortenedURL = value }

func (d *requestDocument) ShowShortenedURLContainer() { d.containerVisible = true }

func (d *requestDocument) SelectShortenedURL() { d.selected = true }

func (d *requestDocument) SetCopyButtonLabel(label string) { d.copyLabel = label }

func (d *requestDocument) SetSubmitEnabled(enabled bool) { d.submitDisabled = !enabled }

// Alert keeps the first message only, the browser shows one dialog at a time.
func (d *requestDocument) Alert(message string) {
	if d.alert == "" {
		d.alert = message
	}
}

func (d *requestDocument) BindSubmit(handler func(ctx context.Context)) { d.onSubmit = handler }

func (d *requestDocument) BindCopy(handler func(ctx context.Context)) { d.onCopy = handler }

// submit fires the bound submit handler, if any.
func (d *requestDocument) submit(ctx context.Context) bool {
	if d.onSubmit == nil {
		return false
	}
	d.onSubmit(ctx)
	return true
}

// copy fires the bound copy handler, if any.
func (d *requestDocument) copy(ctx context.Context) bool {
	if d.onCopy == nil {
		return false
	}
	d.onCopy(ctx)
	return true
}

// requestClipboard turns a copy request into a clipboard write performed by
// the browser when the page is rendered.
type requestClipboard struct {
	document *requestDocument
	text     string
}

func (c *requestClipboard) CopySelection() error {
	if !c.document.selected || c.document.shortenedURL == "" {
		return ErrNothingSelected
	}
	c.text = c.document.shortenedURL
	return nil
}

// requestLocation is the address of the requested page. Assign is turned
// into an HTTP redirect.
type requestLocation struct {
	origin   string
	query    url.Values
	assigned string
}

func newRequestLocation(r *http.Request, publicURL string) *requestLocation {
	return &requestLocation{
		origin: requestOrigin(r, publicURL),
		query:  r.URL.Query(),
	}
}

func (l *requestLocation) Origin() string { return l.origin }

func (l *requestLocation) Query() url.Values { return l.query }

func (l *requestLocation) Assign(rawURL string) { l.assigned = rawURL }

// requestOrigin returns publicURL if it is set, otherwise the scheme and
// host the request was made to.
func requestOrigin(r *http.Request, publicURL string) string {
	if publicURL != "" {
		return strings.TrimSuffix(publicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get(ForwardedProtoKey); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host
}
