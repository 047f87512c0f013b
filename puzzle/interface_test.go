package puzzle

import (
	"testing"
)

/*

Summary round trips

*/

func TestSummaryRoundTripUnsolved(t *testing.T) {
	b, err := New(5, 5, testSegments5x5(), map[Position]int{{2, 4}: 3})
	if err != nil {
		t.Fatalf("Board failed to construct: %v", err)
	}
	data, err := b.Summary().Marshal()
	if err != nil {
		t.Fatalf("Marshalling a summary failed: %v", err)
	}
	summary, err := UnmarshalSummary(data)
	if err != nil {
		t.Fatalf("Unmarshalling a summary failed: %v", err)
	}
	restored, err := summary.Board()
	if err != nil {
		t.Fatalf("Rebuilding a board from its summary failed: %v", err)
	}
	if restored.Signature() != b.Signature() {
		t.Errorf("Round trip changed the signature:\n%s\n%s",
			b.Signature(), restored.Signature())
	}
	if restored.Solved() {
		t.Errorf("Round trip of an unsolved board produced a solved one.")
	}
	if val, ok := restored.Given(Position{2, 4}); !ok || val != 3 {
		t.Errorf("Round trip lost the given: (%d, %v)", val, ok)
	}
}

func TestSummaryRoundTripSolved(t *testing.T) {
	b, err := Example2x2()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	b.solution = Solution{{0, 0}: 3, {1, 0}: 4, {0, 1}: 2, {1, 1}: 1}
	data, err := b.Summary().Marshal()
	if err != nil {
		t.Fatalf("Marshalling a solved summary failed: %v", err)
	}
	summary, err := UnmarshalSummary(data)
	if err != nil {
		t.Fatalf("Unmarshalling a solved summary failed: %v", err)
	}
	restored, err := summary.Board()
	if err != nil {
		t.Fatalf("Rebuilding a solved board failed: %v", err)
	}
	if !restored.Solved() {
		t.Fatalf("Round trip lost the solution.")
	}
	for pos, expected := range b.solution {
		if val, ok := restored.ValueAt(pos); !ok || val != expected {
			t.Errorf("ValueAt(%v) = (%d, %v) but expected (%d, true)", pos, val, ok, expected)
		}
	}
}

// A summary is revalidated on the way back in, so a tampered one
// cannot produce a malformed board.
func TestSummaryBoardValidates(t *testing.T) {
	b, err := Example2x2()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	summary := b.Summary()
	summary.Segments = []Segment{{{0, 0}, {0, 1}, {1, 0}}}
	if _, err := summary.Board(); err == nil {
		t.Fatalf("A summary with an incomplete partition rebuilt without error.")
	} else if !IsPartitionError(err) {
		t.Logf("Tampered summary: %v", err)
		t.Errorf("Incorrect error!")
	}
}

func TestUnmarshalSummaryBadJSON(t *testing.T) {
	if _, err := UnmarshalSummary([]byte("{nope")); err == nil {
		t.Fatalf("Unmarshalling garbage did not fail.")
	} else if err.(Error).Attribute != DecodeAttribute {
		t.Logf("Garbage summary: %v", err)
		t.Errorf("Incorrect error!")
	}
}
