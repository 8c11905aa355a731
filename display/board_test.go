package display

import "testing"

func TestWriteSkipsNilTarget(t *testing.T) {
	if Write(nil, "00:00:00") {
		t.Error("Expected write to nil target to report skipped")
	}
}

func TestBoardLookup(t *testing.T) {
	board := NewBoard()
	buf := NewBuffer()

	if _, ok := board.Lookup(DefaultID); ok {
		t.Fatal("Expected empty board to have no targets")
	}

	board.Mount(DefaultID, buf)
	got, ok := board.Lookup(DefaultID)
	if !ok || got != buf {
		t.Fatalf("Expected mounted buffer, got %v ok=%v", got, ok)
	}

	board.Unmount(DefaultID)
	if _, ok := board.Lookup(DefaultID); ok {
		t.Error("Expected target to be gone after Unmount")
	}
}

func TestBoundTargetResolvesOnWrite(t *testing.T) {
	board := NewBoard()
	bound := board.Bind(DefaultID)

	// Nothing mounted yet: skipped silently
	if Write(bound, "00:00:01") {
		t.Error("Expected write to unmounted id to be skipped")
	}

	first := NewBuffer()
	board.Mount(DefaultID, first)
	if !Write(bound, "00:00:02") {
		t.Error("Expected write to mounted id to succeed")
	}

	second := NewBuffer()
	board.Mount(DefaultID, second)
	Write(bound, "00:00:03")

	if first.Text() != "00:00:02" {
		t.Errorf("Expected first target to keep 00:00:02, got %q", first.Text())
	}
	if second.Text() != "00:00:03" {
		t.Errorf("Expected remounted target to receive 00:00:03, got %q", second.Text())
	}

	board.Unmount(DefaultID)
	bound.SetText("00:00:04")
	if second.WriteCount() != 1 {
		t.Errorf("Expected no write after unmount, got %d writes", second.WriteCount())
	}
}

func TestBufferRecordsWrites(t *testing.T) {
	buf := NewBuffer()
	buf.SetText("a")
	buf.SetText("b")

	writes := buf.Writes()
	if len(writes) != 2 || writes[0] != "a" || writes[1] != "b" {
		t.Errorf("Expected [a b], got %v", writes)
	}

	writes[0] = "mutated"
	if buf.Writes()[0] != "a" {
		t.Error("Expected Writes to return a copy")
	}
}
