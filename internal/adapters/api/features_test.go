package api

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

type circuitBreakerContext struct {
	clock   *shared.MockClock
	breaker *CircuitBreaker
}

func (c *circuitBreakerContext) aCircuitBreakerWithMaxFailuresAndCooldown(maxFailures, seconds int) error {
	c.clock = shared.NewMockClock(time.Time{})
	c.breaker = NewCircuitBreaker(maxFailures, time.Duration(seconds)*time.Second, c.clock)
	return nil
}

func (c *circuitBreakerContext) iExecuteOperations(count int, kind string) error {
	for i := 0; i < count; i++ {
		fn := succeeding
		if kind == "failing" {
			fn = failing
		}
		err := c.breaker.Call(fn)
		if kind == "succeeding" && err != nil {
			return fmt.Errorf("succeeding operation %d returned %v", i+1, err)
		}
	}
	return nil
}

func (c *circuitBreakerContext) secondsPass(seconds int) error {
	c.clock.Advance(time.Duration(seconds) * time.Second)
	return nil
}

func (c *circuitBreakerContext) theStateShouldBe(expected string) error {
	if got := c.breaker.State().String(); got != expected {
		return fmt.Errorf("expected state %q, got %q", expected, got)
	}
	return nil
}

func (c *circuitBreakerContext) theFailureCountShouldBe(expected int) error {
	if got := c.breaker.FailureCount(); got != expected {
		return fmt.Errorf("expected failure count %d, got %d", expected, got)
	}
	return nil
}

func (c *circuitBreakerContext) theNextOperationShouldBeRejected() error {
	ran := false
	err := c.breaker.Call(func() error { ran = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) {
		return fmt.Errorf("expected ErrCircuitOpen, got %v", err)
	}
	if ran {
		return fmt.Errorf("operation ran while the circuit was open")
	}
	return nil
}

func InitializeCircuitBreakerScenario(sc *godog.ScenarioContext) {
	c := &circuitBreakerContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		c.clock = nil
		c.breaker = nil
		return ctx, nil
	})

	sc.Step(`^a circuit breaker with max failures (\d+) and cooldown (\d+) seconds$`, c.aCircuitBreakerWithMaxFailuresAndCooldown)
	sc.Step(`^I execute (\d+) (failing|succeeding) operations? through the circuit breaker$`, c.iExecuteOperations)
	sc.Step(`^(\d+) seconds pass$`, c.secondsPass)
	sc.Step(`^the circuit breaker state should be "([^"]*)"$`, c.theStateShouldBe)
	sc.Step(`^the circuit breaker failure count should be (\d+)$`, c.theFailureCountShouldBe)
	sc.Step(`^the next operation should be rejected without running$`, c.theNextOperationShouldBeRejected)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCircuitBreakerScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
