package usecase

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/MisterMaks/go-shortener-page/internal/page/usecase ShortenerAPIInterface,ClipboardInterface

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/MisterMaks/go-shortener-page/internal/logger"
	"github.com/MisterMaks/go-shortener-page/internal/page"
	"go.uber.org/zap"
)

// Constants for logs.
const (
	URLKey      string = "url"
	CodeKey     string = "code"
	ShortURLKey string = "short_url"
	ModeKey     string = "mode"
)

// ShortenerAPIInterface contains the calls to the remote shortening service.
type ShortenerAPIInterface interface {
	Shorten(ctx context.Context, rawURL string) (*page.ShortenResponse, error)
	Resolve(ctx context.Context, code string) (*page.ResolveResponse, error)
}

// ClipboardInterface is page.Clipboard, declared here for mockgen.
type ClipboardInterface interface {
	page.Clipboard
}

// PageController drives one page: it shortens submitted URLs, copies the
// result and resolves short codes found in the page address.
type PageController struct {
	API       ShortenerAPIInterface
	Document  page.Document
	Clipboard page.Clipboard
	Location  page.Location

	pending atomic.Bool
}

// NewPageController creates *PageController.
func NewPageController(
	api ShortenerAPIInterface,
	document page.Document,
	clipboard page.Clipboard,
	location page.Location,
) *PageController {
	return &PageController{
		API:       api,
		Document:  document,
		Clipboard: clipboard,
		Location:  location,
	}
}

// ShortenURL asks the service for a code of rawURL.
func (pc *PageController) ShortenURL(ctx context.Context, rawURL string) (string, error) {
	resp, err := pc.API.Shorten(ctx, rawURL)
	if err != nil {
		logger.GetContextLogger(ctx).Warn("Failed to shorten URL",
			zap.String(URLKey, rawURL),
			zap.Error(err),
		)
		return "", page.NewNetworkError(page.ErrShortenURL, err)
	}
	return resp.Code, nil
}

// DisplayShortenedURL writes shortURL into the result field and shows it.
func (pc *PageController) DisplayShortenedURL(shortURL string) {
	pc.Document.SetShortenedURL(shortURL)
	pc.Document.ShowShortenedURLContainer()
}

// HandleFormSubmit shortens the URL typed into the form. Failures are
// reported to the user with an alert, never returned.
func (pc *PageController) HandleFormSubmit(ctx context.Context) {
	ctxLogger := logger.GetContextLogger(ctx)

	rawURL := strings.TrimSpace(pc.Document.InputURL())
	if rawURL == "" {
		ctxLogger.Info("Empty URL submitted")
		pc.Document.Alert(page.EmptyURLAlert)
		return
	}

	if !pc.pending.CompareAndSwap(false, true) {
		ctxLogger.Info("Submission ignored, previous one is pending",
			zap.String(URLKey, rawURL),
		)
		return
	}
	pc.Document.SetSubmitEnabled(false)
	defer func() {
		pc.Document.SetSubmitEnabled(true)
		pc.pending.Store(false)
	}()

	code, err := pc.ShortenURL(ctx, rawURL)
	if err != nil {
		pc.Document.Alert(page.ShortenFailAlert)
		return
	}

	shortURL := page.BuildShortURL(pc.Location.Origin(), code)
	ctxLogger.Info("Short URL created",
		zap.String(URLKey, rawURL),
		zap.String(ShortURLKey, shortURL),
	)
	pc.DisplayShortenedURL(shortURL)
}

// HandleCopyBtnClick copies the result field. The copy outcome is not
// reported, the button label changes anyway.
func (pc *PageController) HandleCopyBtnClick(ctx context.Context) {
	pc.Document.SelectShortenedURL()
	if err := pc.Clipboard.CopySelection(); err != nil {
		logger.GetContextLogger(ctx).Debug("Failed to copy short URL", zap.Error(err))
	}
	pc.Document.SetCopyButtonLabel(page.CopiedLabel)
}

// RedirectToURL resolves code and navigates the page to the original URL.
// A response without url leaves the page where it is.
func (pc *PageController) RedirectToURL(ctx context.Context, code string) error {
	ctxLogger := logger.GetContextLogger(ctx)

	resp, err := pc.API.Resolve(ctx, code)
	if err != nil {
		ctxLogger.Warn("Failed to resolve code",
			zap.String(CodeKey, code),
			zap.Error(err),
		)
		return page.NewNetworkError(page.ErrRedirectToURL, err)
	}
	if resp == nil || resp.URL == "" {
		ctxLogger.Debug("Code resolved without URL", zap.String(CodeKey, code))
		return nil
	}

	ctxLogger.Info("Redirecting to URL",
		zap.String(CodeKey, code),
		zap.String(URLKey, resp.URL),
	)
	pc.Location.Assign(resp.URL)
	return nil
}

// Initialize binds the page handlers and, when the address carries a
// short code, resolves it before returning.
func (pc *PageController) Initialize(ctx context.Context) (page.Mode, error) {
	pc.Document.BindSubmit(pc.HandleFormSubmit)
	pc.Document.BindCopy(pc.HandleCopyBtnClick)

	code := pc.Location.Query().Get(page.CodeQueryParamKey)
	if code == "" {
		return page.ModeInteractive, nil
	}

	logger.GetContextLogger(ctx).Debug("Page loaded with short code",
		zap.String(CodeKey, code),
		zap.Stringer(ModeKey, page.ModeRedirect),
	)
	return page.ModeRedirect, pc.RedirectToURL(ctx, code)
}
