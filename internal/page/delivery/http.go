package delivery

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/MisterMaks/go-shortener-page/internal/logger"
	"github.com/MisterMaks/go-shortener-page/internal/page"
	"go.uber.org/zap"
)

const (
	ContentTypeKey    string = "Content-Type"
	TextHTMLKey       string = "text/html; charset=utf-8"
	ForwardedProtoKey string = "X-Forwarded-Proto"

	URLFormKey          string = "url"
	ShortenedURLFormKey string = "shortened_url"

	ModeKey     string = "mode"
	LocationKey string = "location"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// PageControllerInterface is the bootstrap of a page controller.
type PageControllerInterface interface {
	Initialize(ctx context.Context) (page.Mode, error)
}

// ControllerFactory builds a controller driving the page of one request.
type ControllerFactory func(document page.Document, clipboard page.Clipboard, location page.Location) PageControllerInterface

// PingerInterface checks the shortening service.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

// PageHandler serves the shortening page.
type PageHandler struct {
	NewController ControllerFactory
	API           PingerInterface
	PublicURL     string
}

// NewPageHandler creates *PageHandler. An empty publicURL makes the short
// links point to the host the page was requested from.
func NewPageHandler(newController ControllerFactory, api PingerInterface, publicURL string) *PageHandler {
	return &PageHandler{
		NewController: newController,
		API:           api,
		PublicURL:     publicURL,
	}
}

// pageView is the template data.
type pageView struct {
	InputURL         string
	ShortenedURL     string
	ContainerVisible bool
	Selected         bool
	CopyLabel        string
	SubmitDisabled   bool
	Alert            string
	CopyText         string
}

type pageRequest struct {
	document  *requestDocument
	clipboard *requestClipboard
	location  *requestLocation
}

func (ph *PageHandler) newPageRequest(r *http.Request) *pageRequest {
	doc := newRequestDocument()
	return &pageRequest{
		document:  doc,
		clipboard: &requestClipboard{document: doc},
		location:  newRequestLocation(r, ph.PublicURL),
	}
}

// load runs the controller bootstrap. It reports whether the response is
// already written as a redirect.
func (ph *PageHandler) load(w http.ResponseWriter, r *http.Request, pr *pageRequest) bool {
	ctxLogger := logger.GetContextLogger(r.Context())

	controller := ph.NewController(pr.document, pr.clipboard, pr.location)
	mode, err := controller.Initialize(r.Context())
	if err != nil {
		// The page opens as usual, the visitor gets no error.
		ctxLogger.Warn("Failed to initialize page",
			zap.Stringer(ModeKey, mode),
			zap.Error(err),
		)
	}

	if pr.location.assigned == "" {
		return false
	}
	ctxLogger.Info("Page navigated",
		zap.Stringer(ModeKey, mode),
		zap.String(LocationKey, pr.location.assigned),
	)
	http.Redirect(w, r, pr.location.assigned, http.StatusFound)
	return true
}

func (ph *PageHandler) render(w http.ResponseWriter, r *http.Request, pr *pageRequest) {
	ctxLogger := logger.GetContextLogger(r.Context())

	doc := pr.document
	view := pageView{
		InputURL:         doc.inputURL,
		ShortenedURL:     doc.shortenedURL,
		ContainerVisible: doc.containerVisible,
		Selected:         doc.selected,
		CopyLabel:        doc.copyLabel,
		SubmitDisabled:   doc.submitDisabled,
		Alert:            doc.alert,
		CopyText:         pr.clipboard.text,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		ctxLogger.Error("Failed to render page", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set(ContentTypeKey, TextHTMLKey)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxLogger.Warn("Failed to write page", zap.Error(err))
	}
}

// ShowPage opens the page. With a short code in the query the visitor is
// redirected to the original URL when the service knows it.
func (ph *PageHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	logger.GetContextLogger(r.Context()).Info("Opening page")

	pr := ph.newPageRequest(r)
	if ph.load(w, r, pr) {
		return
	}
	ph.render(w, r, pr)
}

// SubmitForm handles the submission of the URL form.
func (ph *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	ctxLogger.Info("Submitting URL form")

	if err := r.ParseForm(); err != nil {
		ctxLogger.Warn("Bad request", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pr := ph.newPageRequest(r)
	pr.document.inputURL = r.PostForm.Get(URLFormKey)
	if ph.load(w, r, pr) {
		return
	}
	if !pr.document.submit(r.Context()) {
		ctxLogger.Warn("Submit handler is not bound")
	}
	ph.render(w, r, pr)
}

// CopyShortenedURL handles a click on the copy button.
func (ph *PageHandler) CopyShortenedURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	ctxLogger.Info("Copying short URL")

	if err := r.ParseForm(); err != nil {
		ctxLogger.Warn("Bad request", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pr := ph.newPageRequest(r)
	pr.document.inputURL = r.PostForm.Get(URLFormKey)
	if shortenedURL := r.PostForm.Get(ShortenedURLFormKey); shortenedURL != "" {
		pr.document.shortenedURL = shortenedURL
		pr.document.containerVisible = true
	}
	if ph.load(w, r, pr) {
		return
	}
	if !pr.document.copy(r.Context()) {
		ctxLogger.Warn("Copy handler is not bound")
	}
	ph.render(w, r, pr)
}

// Ping checks that the shortening service is reachable.
func (ph *PageHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	ctxLogger.Info("Ping shortener API")

	if err := ph.API.Ping(r.Context()); err != nil {
		ctxLogger.Error("Failed to ping shortener API", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
