package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-shortener-page/internal/gzip"
	"github.com/MisterMaks/go-shortener-page/internal/logger"
	"github.com/MisterMaks/go-shortener-page/internal/page"
	pageClientInternal "github.com/MisterMaks/go-shortener-page/internal/page/client"
	pageDeliveryInternal "github.com/MisterMaks/go-shortener-page/internal/page/delivery"
	pageUsecaseInternal "github.com/MisterMaks/go-shortener-page/internal/page/usecase"
)

const (
	ServerAddress   string        = "localhost:8080"
	APIBaseURL      string        = "https://urlshorterner-alexconlag.b4a.run"
	LogLevel        string        = "INFO"
	ShutdownTimeout time.Duration = 10 * time.Second
)

type PageHandlerInterface interface {
	ShowPage(w http.ResponseWriter, r *http.Request)
	SubmitForm(w http.ResponseWriter, r *http.Request)
	CopyShortenedURL(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// Middlewares used by the router.
type Middlewares struct {
	RequestLogger  func(http.Handler) http.Handler
	GzipMiddleware func(http.Handler) http.Handler
}

func shortenerPageRouter(pageHandler PageHandlerInterface, middlewares *Middlewares) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middlewares.GzipMiddleware)

	r.Get(`/`, pageHandler.ShowPage)
	r.Post(`/`, pageHandler.SubmitForm)
	r.Post(`/copy`, pageHandler.CopyShortenedURL)
	r.Get(`/ping`, pageHandler.Ping)
	return r
}

func controllerFactory(api pageUsecaseInternal.ShortenerAPIInterface) pageDeliveryInternal.ControllerFactory {
	return func(document page.Document, clipboard page.Clipboard, location page.Location) pageDeliveryInternal.PageControllerInterface {
		return pageUsecaseInternal.NewPageController(api, document, clipboard, location)
	}
}

func run(ctx context.Context, config *Config) error {
	apiClient, err := pageClientInternal.NewClient(&http.Client{}, config.APIBaseURL, config.RequestTimeout)
	if err != nil {
		return err
	}

	pageHandler := pageDeliveryInternal.NewPageHandler(controllerFactory(apiClient), apiClient, config.PublicURL)

	middlewares := &Middlewares{
		RequestLogger:  logger.RequestLogger,
		GzipMiddleware: gzip.GzipMiddleware,
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           shortenerPageRouter(pageHandler, middlewares),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running",
			zap.String("address", config.ServerAddress),
			zap.String("api_base_url", config.APIBaseURL),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	config, err := NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalln("CRITICAL\tFailed to create config. Error:", err)
	}

	if err = logger.Initialize(config.LogLevel); err != nil {
		log.Fatalln("CRITICAL\tFailed to init logger. Error:", err)
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config); err != nil {
		logger.Log.Fatal("Failed to run server", zap.Error(err))
	}
}
