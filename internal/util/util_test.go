package util

import (
	"context"
	"testing"
	"time"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	items := make([]int, 53)
	for i := range items {
		items[i] = i
	}

	chunks := Chunk(items, 25)
	if len(chunks) != 3 {
		t.Fatalf("Chunk(53, 25) produced %d chunks, want 3", len(chunks))
	}

	sizes := []int{len(chunks[0]), len(chunks[1]), len(chunks[2])}
	if sizes[0] != 25 || sizes[1] != 25 || sizes[2] != 3 {
		t.Fatalf("Chunk sizes = %v, want [25 25 3]", sizes)
	}

	next := 0
	for _, chunk := range chunks {
		for _, v := range chunk {
			if v != next {
				t.Fatalf("Chunk broke ordering at %d, got %d", next, v)
			}
			next++
		}
	}

	// Appending to a chunk must not clobber its neighbour.
	_ = append(chunks[0], -1)
	if chunks[1][0] != 25 {
		t.Fatalf("append to first chunk overwrote second chunk: %d", chunks[1][0])
	}
}

func TestChunk_Edges(t *testing.T) {
	t.Parallel()

	if got := Chunk([]string{}, 25); got != nil {
		t.Fatalf("Chunk(empty) = %v, want nil", got)
	}
	if got := Chunk([]string{"a"}, 0); got != nil {
		t.Fatalf("Chunk(size 0) = %v, want nil", got)
	}
	if got := Chunk([]string{"a", "b"}, 25); len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("Chunk(2, 25) = %v, want one chunk of 2", got)
	}
	if got := Chunk(make([]int, 50), 25); len(got) != 2 {
		t.Fatalf("Chunk(50, 25) = %d chunks, want 2", len(got))
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 14.96, want: 15.0},
		{in: 14.94, want: 14.9},
		{in: 6.0, want: 6.0},
		{in: 0.06, want: 0.1},
	}

	for _, tt := range tests {
		if got := RoundTo(tt.in, 1); got != tt.want {
			t.Fatalf("RoundTo(%v, 1) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSleep(t *testing.T) {
	t.Parallel()

	if err := Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Sleep returned %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if err := Sleep(ctx, time.Minute); err == nil {
		t.Fatal("Sleep on cancelled context returned nil")
	}
	if time.Since(start) > time.Second {
		t.Fatal("Sleep did not return promptly on cancellation")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub second", duration: 350 * time.Millisecond, expected: "350ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
