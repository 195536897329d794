package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/mergington/internal/smoke"
	"github.com/okian/mergington/pkg/logger"
)

const (
	defaultBaseURL  = "http://localhost:8000"
	defaultActivity = "Chess Club"
	defaultEmail    = "testuser@example.com"
	defaultTimeout  = 10 * time.Second
	runBudget       = time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", defaultBaseURL, "Base URL of the service")
		activity = flag.String("activity", defaultActivity, "Activity to exercise")
		email    = flag.String("email", defaultEmail, "Email to sign up")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		format   = flag.String("log-format", "text", "Log format (text or json)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := logger.Init(logger.WithFormat(*format)); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runBudget)
	defer cancel()

	report, err := smoke.Run(ctx, &smoke.Config{
		BaseURL:  *baseURL,
		Activity: *activity,
		Email:    *email,
		Timeout:  *timeout,
	})
	if err != nil {
		logger.Get().Error(ctx, "smoke run failed", logger.Error(err))
		os.Exit(1)
	}

	logger.Get().Info(ctx, "smoke run complete",
		logger.Int("steps", len(report.Steps)),
		logger.String("duration", report.Duration.String()))
}
