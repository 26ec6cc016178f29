package app

import (
	"context"
	"testing"
	"time"
)

func TestSetupSignals(t *testing.T) {
	ctx, stop := SetupSignals(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("signal context canceled before any signal or stop")
	default:
	}

	// Releasing the signal watcher cancels the derived context.
	stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("signal context not canceled after stop")
	}
}

func TestSetupSignals_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := SetupSignals(parent)
	defer stop()

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("signal context did not follow parent cancellation")
	}
}
