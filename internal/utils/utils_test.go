package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitForZeroDuration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, 0); err != nil {
		t.Fatalf("expected no error for zero duration, got %v", err)
	}
}

func TestWaitForSleeps(t *testing.T) {
	original := sleep
	t.Cleanup(func() { sleep = original })

	var slept time.Duration
	sleep = func(d time.Duration) { slept = d }

	if err := WaitFor(context.Background(), 3*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slept != 3*time.Second {
		t.Fatalf("expected to sleep 3s, got %s", slept)
	}
}

func TestWaitForCancelled(t *testing.T) {
	original := sleep
	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { sleep = original })
	sleep = func(time.Duration) {
		close(started)
		<-release
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	<-started
	close(release)
}
