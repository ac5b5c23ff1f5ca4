// Package cmdutil holds helpers shared by portalctl commands.
package cmdutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/config"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/query"
)

// RequestTimeout bounds every command's remote work.
const RequestTimeout = 10 * time.Second

// Session returns the cached data session for the running command.
func Session(ctx context.Context) (*query.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.Session(ctx)
}

// Authenticated reports whether the running command carries an identity.
func Authenticated(ctx context.Context) bool {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.Authenticated()
}

// WithTimeout derives the per-command request context.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, RequestTimeout)
}

// Explain turns a data layer error into the message shown to the user.
// action describes what was attempted, e.g. "enroll in course".
func Explain(action string, err error) error {
	if err == nil {
		return nil
	}
	switch sdk.KindOf(err) {
	case sdk.KindValidationFailed:
		return fmt.Errorf("please fill in all required fields: %w", err)
	case sdk.KindNotFound:
		return fmt.Errorf("failed to %s: not found", action)
	case sdk.KindPermissionDenied:
		return fmt.Errorf("failed to %s: admin role required", action)
	case sdk.KindUnauthenticated:
		return fmt.Errorf("failed to %s: please log in with `portalctl auth login`", action)
	case sdk.KindRemoteUnavailable:
		return fmt.Errorf("failed to %s: portal server unavailable: %w", action, err)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// StatusLabel renders a content status with a color per state.
func StatusLabel(status sdk.ContentStatus) string {
	switch status {
	case sdk.StatusPublished:
		return pterm.Green(string(status))
	case sdk.StatusArchived:
		return pterm.Gray(string(status))
	default:
		return pterm.Yellow(string(status))
	}
}

// Truncate shortens s to n runes for table cells.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
