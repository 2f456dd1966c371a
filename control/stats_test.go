package control_test

import (
	"testing"

	"github.com/momentics/wsframe/control"
)

func TestStatsCounters(t *testing.T) {
	var s control.Stats
	s.CountFrame(8, true)
	s.CountFrame(4, false)

	if got := s.Frames(); got != 2 {
		t.Errorf("Frames() = %d, want 2", got)
	}
	if got := s.MaskedFrames(); got != 1 {
		t.Errorf("MaskedFrames() = %d, want 1", got)
	}
	if got := s.WireBytes(); got != 12 {
		t.Errorf("WireBytes() = %d, want 12", got)
	}

	snap := s.Snapshot()
	if snap["frames"] != 2 || snap["masked_frames"] != 1 || snap["wire_bytes"] != 12 {
		t.Errorf("unexpected snapshot: %v", snap)
	}
}
