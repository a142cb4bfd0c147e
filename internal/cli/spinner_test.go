package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Working...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Working...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Working...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerWritesAndClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Compiling network...")
	s.out = &buf
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Compiling network...") {
		t.Errorf("output missing the status message: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("line not cleared after stop: %q", out)
	}
}

func TestSpinnerStopWithMessages(t *testing.T) {
	s := newSpinner("Working...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done")

	s = newSpinner("Working...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Failed")
}
