package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
)

// HandleError logs the error and sends it to Sentry. Sentry is no-op when it is not configured.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})

	attrs := []any{slog.Any("error", err)}
	if evID := hub.CaptureException(err); evID != nil {
		attrs = append(attrs, slog.String("sentry.EventID", string(*evID)))
	}

	logging.From(ctx).Error(msg, attrs...)
}
