package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "used chatgpt",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "with ai",
			limit:  10,
			expect: "with ai",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "used chat.shopify.io",
			limit:  9,
			expect: "used chat...",
		},
		{
			name:   "counts runes not bytes",
			input:  "использовал chatgpt",
			limit:  11,
			expect: "использовал...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  to generate  ",
			limit:  20,
			expect: "to generate",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestWaitForElapses(t *testing.T) {
	if err := WaitFor(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitForZeroDuration(t *testing.T) {
	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := WaitFor(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitForCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := WaitFor(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("expected WaitFor to return promptly after cancellation")
	}
}
