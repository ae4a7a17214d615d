// Command smoke exercises a running pet name API and exits non-zero when any
// endpoint answers with an unexpected status.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/Apurer/pet-name-generator/internal/clients/http/petnames"
)

type options struct {
	BaseURL string        `long:"base-url" env:"API_BASE" default:"http://localhost:8000" description:"Root URL of the running API"`
	Timeout time.Duration `long:"timeout" default:"5s" description:"Per-request timeout"`
}

type check struct {
	path   string
	status int
}

var checks = []check{
	{"/", http.StatusOK},
	{"/health", http.StatusOK},
	{"/pets", http.StatusOK},
	{"/pets/dog/names?count=3", http.StatusOK},
	{"/pets/cat/random", http.StatusOK},
	{"/pets/dog/facts", http.StatusOK},
	{"/pets/cat/facts/random", http.StatusOK},
	{"/facts", http.StatusOK},
	{"/facts/random", http.StatusOK},
	{"/pets/invalid/names", http.StatusNotFound},
	{"/pets/dog/names?count=11", http.StatusBadRequest},
	{"/static/styles.css", http.StatusOK},
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client, err := petnames.NewClient(opts.BaseURL, &http.Client{Timeout: opts.Timeout})
	if err != nil {
		logger.Error("invalid base URL", slog.String("error", err.Error()))
		os.Exit(2)
	}
	passed := run(context.Background(), client, checks, logger)
	logger.Info("smoke run finished", slog.Int("passed", passed), slog.Int("total", len(checks)))
	if passed != len(checks) {
		os.Exit(1)
	}
}

// run executes every check and returns how many passed.
func run(ctx context.Context, client *petnames.Client, checks []check, logger *slog.Logger) int {
	passed := 0
	for _, c := range checks {
		status, err := client.Status(ctx, c.path)
		switch {
		case err != nil:
			logger.Error("request failed", slog.String("path", c.path), slog.String("error", err.Error()))
		case status != c.status:
			logger.Error("unexpected status", slog.String("path", c.path), slog.Int("want", c.status), slog.Int("got", status))
		default:
			logger.Info("ok", slog.String("path", c.path), slog.Int("status", status))
			passed++
		}
	}
	return passed
}
