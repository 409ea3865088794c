package cmd

import (
	"context"
	"log/slog"
	"os"
)

const appName = "surveybot"

// ContextHandler is a slog.Handler that adds the request and chat ids stored in the context,
// plus the application name and version, to every record.
type ContextHandler struct {
	slog.Handler
	ver string
	app string
}

//nolint:gocritic // ignore this linting rule
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID, ok := ctx.Value("req_id").(string); ok {
		r.AddAttrs(slog.String("req_id", requestID))
	}

	if chatID, ok := ctx.Value("chat_id").(string); ok {
		r.AddAttrs(slog.String("chat_id", chatID))
	}

	r.AddAttrs(slog.String("app", h.app), slog.String("ver", h.ver))

	return h.Handler.Handle(ctx, r)
}

// initLogger sets the default slog logger from the log level and format flags.
func initLogger(arg *args) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(arg.LogLevel)); err != nil {
		return err
	}

	options := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler
	if arg.TextFormat {
		logHandler = slog.NewTextHandler(os.Stdout, options)
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, options)
	}

	slog.SetDefault(slog.New(&ContextHandler{
		Handler: logHandler,
		ver:     arg.version,
		app:     appName,
	}))

	return nil
}
