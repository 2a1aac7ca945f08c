package pagenav

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_SliceSource_GetItems(t *testing.T) {
	src := NewSliceSource(lo.Range(10))

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{"head", 0, 3, []int{0, 1, 2}},
		{"middle", 4, 2, []int{4, 5}},
		{"clipped at end", 8, 5, []int{8, 9}},
		{"exact end", 10, 5, []int{}},
		{"past end", 25, 5, []int{}},
		{"zero limit", 2, 0, []int{}},
		{"negative offset treated as zero", -4, 2, []int{0, 1}},
		{"negative limit treated as zero", 3, -1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.GetItems(tt.offset, tt.limit)
			if len(tt.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_SliceSource_GetItems_ReturnsCopy(t *testing.T) {
	backing := []int{1, 2, 3}
	src := NewSliceSource(backing)

	got := src.GetItems(0, 2)
	got[0] = 100

	require.Equal(t, []int{1, 2, 3}, backing)
	require.Equal(t, 3, src.Count())
}

func Test_SliceSource_Nil(t *testing.T) {
	var src *SliceSource[string]

	require.Equal(t, 0, src.Count())
	require.Empty(t, src.GetItems(0, 10))
	require.Empty(t, NewSliceSource[string](nil).GetItems(0, 10))
}
