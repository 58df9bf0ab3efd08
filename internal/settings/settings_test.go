package settings

import "testing"

func TestNewStore_FallsBackToDefault(t *testing.T) {
	if got := NewStore(0).LogLimit(); got != DefaultLogLimit {
		t.Fatalf("LogLimit = %d, want %d", got, DefaultLogLimit)
	}
	if got := NewStore(250).LogLimit(); got != 250 {
		t.Fatalf("LogLimit = %d, want 250", got)
	}
}

func TestStore_SetClampsBelowOne(t *testing.T) {
	s := NewStore(10)
	s.SetLogLimit(-5)
	if got := s.LogLimit(); got != 1 {
		t.Fatalf("LogLimit = %d, want 1", got)
	}
}

func TestStore_Adjust(t *testing.T) {
	s := NewStore(100)
	if got := s.Adjust(50); got != 150 {
		t.Fatalf("Adjust(+50) = %d, want 150", got)
	}
	if got := s.Adjust(-200); got != 1 {
		t.Fatalf("Adjust(-200) = %d, want clamp to 1", got)
	}
}
