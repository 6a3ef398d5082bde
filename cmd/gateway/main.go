package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"civicfix-ai/internal/app"
	"civicfix-ai/internal/audit"
	"civicfix-ai/internal/auth"
	"civicfix-ai/internal/classify"
	"civicfix-ai/internal/events"
	"civicfix-ai/internal/httputil"
)

func main() {
	deps, err := app.Build(context.Background())
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Audit.Close()
	defer deps.Events.Close()

	r := httputil.NewRouter(deps.Log)
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	r.Group(func(r chi.Router) {
		r.Use(auth.Stages(deps.Gate))
		r.Post("/ai/verify", verifyHandler(deps))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("gateway listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func verifyHandler(deps app.Deps) http.HandlerFunc {
	maxUploadSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Validate size before parsing the multipart body
		if r.ContentLength > maxUploadSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("image too large (max %d bytes)", maxUploadSize), nil, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			httputil.Fail(deps.Log, w, "image is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("image too large (max %d bytes)", maxUploadSize), nil, http.StatusBadRequest)
			return
		}

		image, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read image", err, http.StatusInternalServerError)
			return
		}
		mimeType := header.Header.Get("Content-Type")

		result, err := deps.Classifier.Classify(r.Context(), image, mimeType)
		if err != nil {
			// Upstream detail stays in the log; callers get a generic failure.
			httputil.Fail(deps.Log, w, "issue verification failed", err, http.StatusBadGateway)
			return
		}

		recordOutcome(deps, r, result, time.Since(start))
		httputil.WriteJSON(w, http.StatusOK, result)
	}
}

// recordOutcome persists and publishes the verification outcome. Both paths
// are best effort: the caller already has a contract-conformant result.
func recordOutcome(deps app.Deps, r *http.Request, res classify.Result, took time.Duration) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	entry := audit.Entry{
		ID:         uuid.New(),
		RequestID:  reqID,
		Principal:  auth.Principal(ctx),
		Issue:      res.Issue,
		Priority:   res.Priority,
		DurationMS: took.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if err := deps.Audit.Record(ctx, entry); err != nil {
		deps.Log.Warn("failed to record verification", "err", err, "request_id", reqID)
	}

	ev := events.VerifiedEvent{RequestID: reqID, Issue: res.Issue, Priority: res.Priority}
	if err := deps.Events.PublishVerified(ctx, ev); err != nil {
		deps.Log.Warn("failed to publish verification event", "err", err, "request_id", reqID)
	}
}
