// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synthesis invokes the generative text service that maps research
// context to a raw intelligence profile. The instruction contract it sends
// (prompt.go) is the pipeline's correctness surface; this file only handles
// invocation and transient-failure retry.
package synthesis

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Backend abstracts the generative text service so tests can supply mocks.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// Synthesize sends the instruction contract plus the request's research
// context to the backend and returns the raw response text, retrying
// transient failures with exponential backoff. A failure that survives all
// retries propagates to the caller: with no generated content at all there
// is no meaningful record to fall back to.
func Synthesize(ctx context.Context, backend Backend, req Request, maxRetries int) (string, error) {
	user, err := renderUserPrompt(req)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		raw, err := backend.Complete(ctx, systemPrompt, user)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("synthesis failed after %d retries: %w", maxRetries, lastErr)
}

// SystemPrompt exposes the instruction contract for inspection (the CLI's
// explain output and the contract tests).
func SystemPrompt() string { return systemPrompt }
