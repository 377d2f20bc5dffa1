// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// Override backoff to avoid real sleeps in retry tests.
	backoffBase = time.Millisecond
	os.Exit(m.Run())
}

// The instruction contract is the pipeline's correctness surface; these
// tests pin its shape independent of any model's output quality.

func TestInstructionContract_NoFabricationRule(t *testing.T) {
	if !strings.Contains(systemPrompt, `"Unknown"`) {
		t.Error("contract must require the Unknown sentinel for unsupported facts")
	}
	if !strings.Contains(systemPrompt, "Never invent facts") {
		t.Error("contract must state the no-fabrication rule")
	}
}

func TestInstructionContract_RequiredSections(t *testing.T) {
	for _, key := range []string{
		`"snapshot"`, `"why_now"`, `"personas"`, `"angles"`, `"openers"`,
		`"tech_stack"`, `"change_events"`, `"is_named_person"`,
		`"goals"`, `"fears"`, `"metric"`, `"label"`, `"script"`,
	} {
		if !strings.Contains(systemPrompt, key) {
			t.Errorf("contract schema missing %s", key)
		}
	}
}

func TestInstructionContract_SectionCaps(t *testing.T) {
	if !strings.Contains(systemPrompt, "WHY NOW items (2-3") {
		t.Error("contract must cap why_now to 2-3 items")
	}
	if !strings.Contains(systemPrompt, "PERSONAS (at most 2)") {
		t.Error("contract must cap personas to 2")
	}
	if !strings.Contains(systemPrompt, "ANGLES (at most 2)") {
		t.Error("contract must cap angles to 2")
	}
}

func TestInstructionContract_TargetingRules(t *testing.T) {
	for _, want := range []string{
		"Avoid the CEO",             // persona bias away from C-suite
		"internal comms lead beats", // specificity ranking
		"vendor homepage",           // tech corroboration rule
		"leadership changes",        // structural signal bias
	} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("contract missing targeting rule fragment %q", want)
		}
	}
}

func TestInstructionContract_OutputFormatRule(t *testing.T) {
	if !strings.Contains(systemPrompt, "exactly one JSON object") {
		t.Error("contract must demand a single JSON object")
	}
	if !strings.Contains(systemPrompt, "No markdown fences") {
		t.Error("contract must forbid code fences")
	}
	// Character budgets keep the fixed-size layout from overflowing.
	for _, budget := range []string{"max 160 chars", "max 60 chars", "max 30 chars"} {
		if !strings.Contains(systemPrompt, budget) {
			t.Errorf("contract missing character budget %q", budget)
		}
	}
}

func TestRenderUserPrompt(t *testing.T) {
	got, err := renderUserPrompt(Request{
		Company: "Acme Corp",
		Website: "acme.com",
		Context: "[Source 1] (general)\nURL: https://a\nTitle: t\nContent: c",
	})
	if err != nil {
		t.Fatalf("renderUserPrompt: %v", err)
	}
	for _, want := range []string{"Target Company: Acme Corp", "Website: acme.com", "[Source 1] (general)"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

// failNTimesBackend fails the first N calls, then succeeds.
type failNTimesBackend struct {
	failures  int
	callCount int
	response  string
	gotSystem string
	gotUser   string
}

func (f *failNTimesBackend) Complete(_ context.Context, system, user string) (string, error) {
	f.callCount++
	f.gotSystem = system
	f.gotUser = user
	if f.callCount <= f.failures {
		return "", fmt.Errorf("transient error (call %d)", f.callCount)
	}
	return f.response, nil
}

func TestSynthesize_RetriesTransientFailures(t *testing.T) {
	backend := &failNTimesBackend{failures: 2, response: `{"snapshot": {}}`}

	raw, err := Synthesize(context.Background(), backend, Request{Company: "Acme"}, 3)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if raw != `{"snapshot": {}}` {
		t.Errorf("raw = %q", raw)
	}
	if backend.callCount != 3 {
		t.Errorf("callCount = %d, want 3", backend.callCount)
	}
	if backend.gotSystem != systemPrompt {
		t.Error("backend did not receive the instruction contract")
	}
}

func TestSynthesize_ExhaustedRetriesPropagate(t *testing.T) {
	backend := &failNTimesBackend{failures: 10}

	_, err := Synthesize(context.Background(), backend, Request{Company: "Acme"}, 2)
	if err == nil {
		t.Fatal("want error after exhausting retries")
	}
	if backend.callCount != 3 {
		t.Errorf("callCount = %d, want 3 (1 initial + 2 retries)", backend.callCount)
	}
}

func TestSynthesize_ContextCancelledDuringBackoff(t *testing.T) {
	old := backoffBase
	backoffBase = 500 * time.Millisecond
	defer func() { backoffBase = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	backend := &failNTimesBackend{failures: 10}
	_, err := Synthesize(ctx, backend, Request{Company: "Acme"}, 5)
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}
