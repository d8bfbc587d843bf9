package date

import (
	"testing"
	"time"
)

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[int64]
	h.Append(New(2025, time.March, 2), 200)
	h.Append(New(2025, time.March, 1), 100)
	h.Append(New(2025, time.March, 3), 300)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	day, value := h.Latest()
	if day != New(2025, time.March, 3) || value != 300 {
		t.Errorf("Latest() = %s %d, want 2025-03-03 300", day, value)
	}

	// Appending on an existing day overwrites.
	h.Append(New(2025, time.March, 3), 350)
	if h.Len() != 3 {
		t.Fatalf("Len() after overwrite = %d, want 3", h.Len())
	}
	_, value = h.Latest()
	if value != 350 {
		t.Errorf("Latest() value = %d, want 350", value)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[int64]
	h.Append(New(2025, time.March, 1), 100)
	h.Append(New(2025, time.March, 10), 200)

	if v, ok := h.ValueAsOf(New(2025, time.March, 5)); !ok || v != 100 {
		t.Errorf("ValueAsOf(03-05) = %d %v, want 100 true", v, ok)
	}
	if v, ok := h.ValueAsOf(New(2025, time.March, 10)); !ok || v != 200 {
		t.Errorf("ValueAsOf(03-10) = %d %v, want 200 true", v, ok)
	}
	if _, ok := h.ValueAsOf(New(2025, time.February, 28)); ok {
		t.Error("ValueAsOf before first point should report false")
	}
}
