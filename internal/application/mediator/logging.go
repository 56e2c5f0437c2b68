package mediator

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// WithLogger attaches a logger to the context for handlers further down the chain
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// LoggerFromContext returns the context's logger, or a disabled logger if none is set
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LoggingMiddleware logs every request at debug level and failures at warn level.
// The request-scoped logger is placed on the context for the handler.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		name := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
		reqLogger := logger.With().Str("request", name).Logger()

		start := time.Now()
		response, err := next(WithLogger(ctx, reqLogger), request)
		elapsed := time.Since(start)

		if err != nil {
			reqLogger.Warn().Err(err).Dur("duration", elapsed).Msg("request failed")
			return response, err
		}
		reqLogger.Debug().Dur("duration", elapsed).Msg("request handled")
		return response, nil
	}
}
