package mediator_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
)

type pingQuery struct{ Value string }

type pingHandler struct{}

func (pingHandler) Handle(_ context.Context, request mediator.Request) (mediator.Response, error) {
	q, ok := request.(*pingQuery)
	if !ok {
		return nil, errors.New("invalid request type")
	}
	return "pong:" + q.Value, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	resp, err := m.Send(context.Background(), &pingQuery{Value: "neon"})

	require.NoError(t, err)
	assert.Equal(t, "pong:neon", resp)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	err := mediator.RegisterHandler[*pingQuery](m, pingHandler{})
	assert.ErrorContains(t, err, "already registered")

	_, err = m.Send(context.Background(), struct{}{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = m.Send(context.Background(), nil)
	assert.ErrorContains(t, err, "request cannot be nil")
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, request)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	_, err := m.Send(context.Background(), &pingQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestLoggingMiddleware_LogsFailuresAndPassesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware(logger))

	var sawLogger bool
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		sawLogger = mediator.LoggerFromContext(ctx).GetLevel() != zerolog.Disabled
		return nil, errors.New("upstream down")
	})))

	_, err := m.Send(context.Background(), &pingQuery{Value: "x"})

	assert.Error(t, err)
	assert.True(t, sawLogger)
	assert.Contains(t, buf.String(), `"request":"mediator_test.pingQuery"`)
	assert.Contains(t, buf.String(), `"error":"upstream down"`)
}
