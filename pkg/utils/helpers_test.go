package utils

import "testing"

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{38.4, 38},
		{38.5, 39},
		{-2.5, -3},
		{-0.4, 0},
		{0, 0},
		{22, 22},
	}
	for _, tt := range tests {
		if got := RoundWhole(tt.in); got != tt.want {
			t.Errorf("RoundWhole(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1.25, "1.3"},
		{12.04, "12.0"},
		{-0.04, "0.0"},
		{3, "3.0"},
	}
	for _, tt := range tests {
		if got := FormatFixed(tt.in, 1); got != tt.want {
			t.Errorf("FormatFixed(%v, 1) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := Clamp(-1, 0, 100); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
