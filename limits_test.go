package pagenav

import "testing"

func Test_NormalizeItemsPerPage(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero -> min", 0, MinItemsPerPage},
		{"negative -> min", -10, MinItemsPerPage},
		{"one kept", 1, 1},
		{"large kept, no upper bound", 10_000, 10_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeItemsPerPage(tt.in); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_IsNormalizedItemsPerPageMax(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		max      int
		want     int
		isStrict bool
	}{
		{"zero uses default", 0, 50, DefaultItemsPerPage, false},
		{"negative uses default", -10, 50, DefaultItemsPerPage, false},
		{"within max unchanged", 7, 50, 7, true},
		{"equal max unchanged", 50, 50, 50, true},
		{"above max clamped", 51, 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedItemsPerPageMax(tt.in, tt.max)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_NormalizeItemsPerPageMax(t *testing.T) {
	tests := []struct {
		name string
		in   int
		max  int
		want int
	}{
		{"zero -> default", 0, 77, DefaultItemsPerPage},
		{"clamp to max", 1000, 77, 77},
		{"keep when ok", 12, 77, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeItemsPerPageMax(tt.in, tt.max); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}
