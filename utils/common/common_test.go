package common

import "testing"

func TestFormatOrderNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2024, 2, "ORD-2024-002"},
		{2024, 1, "ORD-2024-001"},
		{2025, 99, "ORD-2025-099"},
		{2025, 100, "ORD-2025-100"},
		{2025, 1234, "ORD-2025-1234"}, // no truncation past three digits
	}
	for _, tc := range tests {
		if got := FormatOrderNumber(tc.year, tc.seq); got != tc.want {
			t.Errorf("FormatOrderNumber(%d,%d) = %s, want %s", tc.year, tc.seq, got, tc.want)
		}
	}
}

func TestGetStringValue(t *testing.T) {
	if GetStringValue(nil) != "" {
		t.Error("nil pointer should render empty")
	}
	s := "hello"
	if GetStringValue(&s) != "hello" {
		t.Error("pointer value lost")
	}
}
