package ai_test

import (
	"context"
	"testing"

	ai "github.com/yatrika/travel-assistant/backend/internal/service/ai"
)

func TestDisabledServiceReturnsSentinel(t *testing.T) {
	svc := ai.Disabled()
	ctx := context.Background()

	if svc.Available() {
		t.Fatal("disabled service must report unavailable")
	}
	if got := svc.Generate(ctx, "hello"); got != ai.Unavailable {
		t.Fatalf("Generate: got %q want %q", got, ai.Unavailable)
	}
	if got := svc.Summarize(ctx, "raw", "instruction"); got != ai.Unavailable {
		t.Fatalf("Summarize: got %q want %q", got, ai.Unavailable)
	}
}

func TestNilServiceIsSafe(t *testing.T) {
	var svc *ai.Service

	if svc.Available() {
		t.Fatal("nil service must report unavailable")
	}
	if got := svc.Generate(context.Background(), "hello"); got != ai.Unavailable {
		t.Fatalf("Generate on nil: got %q", got)
	}
}
