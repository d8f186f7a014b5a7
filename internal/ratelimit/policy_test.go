package ratelimit

import (
	"testing"
	"time"
)

func TestParsePolicy(t *testing.T) {
	policy, err := ParsePolicy("generate", "10/minute")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Limit != 10 || policy.Window != time.Minute || policy.Name != "generate" {
		t.Fatalf("unexpected policy: %+v", policy)
	}

	policy, err = ParsePolicy("health", "60 per minute")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Limit != 60 || policy.Window != time.Minute {
		t.Fatalf("unexpected policy: %+v", policy)
	}

	policy, err = ParsePolicy("burst", "5/second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Window != time.Second {
		t.Fatalf("unexpected window: %v", policy.Window)
	}
}

func TestParsePolicyRejectsInvalid(t *testing.T) {
	for _, value := range []string{"", "ten/minute", "10/fortnight", "10", "0/minute", "-1/minute"} {
		if _, err := ParsePolicy("generate", value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}
