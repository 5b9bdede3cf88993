package pagination

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		page, limit            int
		wantPage, wantLimit    int
		wantOffset             int
	}{
		{1, 10, 1, 10, 0},
		{3, 20, 3, 20, 40},
		{0, 10, 1, 10, 0},   // page clamped
		{-5, 10, 1, 10, 0},  // negative page clamped
		{2, 0, 2, 10, 10},   // limit defaulted
		{1, 1000, 1, 100, 0}, // limit capped
	}
	for _, tc := range tests {
		p := New(tc.page, tc.limit)
		if p.Page != tc.wantPage || p.Limit != tc.wantLimit || p.Offset != tc.wantOffset {
			t.Errorf("New(%d,%d) = %+v, want page=%d limit=%d offset=%d",
				tc.page, tc.limit, p, tc.wantPage, tc.wantLimit, tc.wantOffset)
		}
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		page, limit    int
		total          int64
		wantTotalPages int
	}{
		{1, 10, 0, 0},
		{1, 10, 5, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{2, 25, 101, 5},
	}
	for _, tc := range tests {
		meta := BuildMeta(tc.page, tc.limit, tc.total)
		if meta.TotalPages != tc.wantTotalPages {
			t.Errorf("BuildMeta(%d,%d,%d).TotalPages = %d, want %d",
				tc.page, tc.limit, tc.total, meta.TotalPages, tc.wantTotalPages)
		}
	}
}
