package smoke

import "os"

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Mergington Smoke Tool
=====================

Runs the sign-up scenario against a running service: sign up, duplicate
sign-up (expects 400), unregister, repeat unregister (expects 400).

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -activity string
        Activity to exercise (default "Chess Club")
  -email string
        Email to sign up (default "testuser@example.com")
  -timeout duration
        HTTP request timeout (default 10s)
  -help
        Show this help message
`)
}
