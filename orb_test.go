package flatbush

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxFromBound(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{-10.5, 20}, Max: orb.Point{30, 40.25}}

	b := BoxFromBound[float64](bound)

	assert.Equal(t, Box64{-10.5, 20, 30, 40.25}, b)
	assert.Equal(t, bound, b.Bound())
}

func TestGeometryIndex(t *testing.T) {
	f := NewFlatbush64()
	geoms := []orb.Geometry{
		orb.Point{-90, 45},
		orb.Point{90, -45},
		orb.LineString{{10, 10}, {20, 20}},
		// crosses the prime meridian
		orb.LineString{{-10, 10}, {10, 10}},
		orb.Polygon{{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}, {-5, -5}}},
	}
	for i, g := range geoms {
		require.Equal(t, i, AddGeometry(f, g))
	}
	f.Finish()

	t.Run("Tile", func(t *testing.T) {
		nw := maptile.New(0, 0, 1)

		assert.ElementsMatch(t, []int{0, 3, 4}, SearchTile(f, nw))
	})

	t.Run("World", func(t *testing.T) {
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, SearchTile(f, maptile.New(0, 0, 0)))
	})

	t.Run("Bound", func(t *testing.T) {
		q := orb.Bound{Min: orb.Point{15, 15}, Max: orb.Point{16, 16}}

		assert.Equal(t, []int{2}, SearchBound(f, q))
	})

	t.Run("Point", func(t *testing.T) {
		q := orb.Point{90, -45}.Bound()

		assert.Equal(t, []int{1}, SearchBound(f, q))
	})
}

func TestAddBound32(t *testing.T) {
	f := NewFlatbush32()
	AddBound(f, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}})
	AddBound(f, orb.Bound{Min: orb.Point{2, 2}, Max: orb.Point{3, 3}})
	f.Finish()

	assert.Equal(t, []int{1}, SearchBound(f, orb.Bound{Min: orb.Point{2.5, 2.5}, Max: orb.Point{4, 4}}))
}
