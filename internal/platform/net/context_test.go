package net

import (
	"context"
	"testing"
)

func TestWithRequest_RoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "rid-1")
	if got := RequestID(ctx); got != "rid-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if RequestID(context.Background()) != "" {
		t.Fatalf("empty context should have no request id")
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	base := context.Background()
	if WithRequest(base, "") != base || WithEngine(base, "") != base {
		t.Fatalf("empty values should not wrap the context")
	}
}

func TestWithEngine(t *testing.T) {
	ctx := WithEngine(WithRequest(context.Background(), "rid-2"), "script")
	if Engine(ctx) != "script" || RequestID(ctx) != "rid-2" {
		t.Fatalf("engine=%q rid=%q", Engine(ctx), RequestID(ctx))
	}
	if Engine(context.Background()) != "" {
		t.Fatalf("unexpected engine on empty context")
	}
}
