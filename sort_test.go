package flatbush

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByKey(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random := func(n int, limit uint32) []uint32 {
		keys := make([]uint32, n)
		for i := range keys {
			keys[i] = rng.Uint32() % limit
		}
		return keys
	}
	ascending := func(n int) []uint32 {
		keys := make([]uint32, n)
		for i := range keys {
			keys[i] = uint32(i)
		}
		return keys
	}
	descending := func(n int) []uint32 {
		keys := ascending(n)
		slices.Reverse(keys)
		return keys
	}

	testCases := []struct {
		name string
		keys []uint32
	}{
		{"Empty", []uint32{}},
		{"One", []uint32{7}},
		{"Two", []uint32{9, 3}},
		{"Equal", []uint32{5, 5, 5, 5, 5}},
		{"Small", []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"Random", random(10000, 1<<31)},
		{"ManyDuplicates", random(10000, 4)},
		{"Ascending", ascending(100000)},
		{"Descending", descending(100000)},
		{"OrganPipe", append(ascending(50000), descending(50000)...)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			keys := slices.Clone(testCase.keys)
			// the payload remembers the key it started with
			items := make([]uint32, len(keys))
			copy(items, keys)

			sortByKey(keys, items)

			assert.True(t, slices.IsSorted(keys))
			assert.Equal(t, keys, items)
			expected := slices.Clone(testCase.keys)
			slices.Sort(expected)
			assert.Equal(t, expected, keys)
		})
	}
}

func TestSortByKey_Boxes(t *testing.T) {
	keys := []uint32{30, 10, 20}
	boxes := []node[float64]{
		{box: Box64{3, 3, 3, 3}, ref: 0},
		{box: Box64{1, 1, 1, 1}, ref: 1},
		{box: Box64{2, 2, 2, 2}, ref: 2},
	}

	sortByKey(keys, boxes)

	require.Equal(t, []uint32{10, 20, 30}, keys)
	assert.Equal(t, []int{1, 2, 0}, []int{boxes[0].itemIndex(), boxes[1].itemIndex(), boxes[2].itemIndex()})
	assert.Equal(t, Box64{1, 1, 1, 1}, boxes[0].box)
}

func TestSortByKey_LengthMismatch(t *testing.T) {
	assert.PanicsWithValue(t, "flatbush: sortByKey: 2 keys for 1 items", func() {
		sortByKey([]uint32{1, 2}, []int{1})
	})
}
