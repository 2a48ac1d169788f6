package flatbush

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Helpers for indexing github.com/paulmach/orb geometries. X is longitude
// (or easting) and Y is latitude (or northing), matching orb.Point.

// BoxFromBound converts an orb.Bound to a Box.
func BoxFromBound[TFloat Float](b orb.Bound) Box[TFloat] {
	return Box[TFloat]{
		MinX: TFloat(b.Min.X()),
		MinY: TFloat(b.Min.Y()),
		MaxX: TFloat(b.Max.X()),
		MaxY: TFloat(b.Max.Y()),
	}
}

// Bound converts the box to an orb.Bound.
func (b Box[T]) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(b.MinX), float64(b.MinY)},
		Max: orb.Point{float64(b.MaxX), float64(b.MaxY)},
	}
}

// AddBound adds b to the index and returns its index.
func AddBound[TFloat Float](f *Flatbush[TFloat], b orb.Bound) int {
	box := BoxFromBound[TFloat](b)
	return f.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
}

// AddGeometry adds the bounding box of g to the index and returns its index.
func AddGeometry[TFloat Float](f *Flatbush[TFloat], g orb.Geometry) int {
	return AddBound(f, g.Bound())
}

// SearchBound returns the indices of all boxes that overlap b.
func SearchBound[TFloat Float](f *Flatbush[TFloat], b orb.Bound) []int {
	return f.SearchBox(BoxFromBound[TFloat](b))
}

// SearchTile returns the indices of all boxes that overlap the WGS84 bounds of a
// web mercator map tile. The index must hold longitude/latitude boxes.
func SearchTile[TFloat Float](f *Flatbush[TFloat], t maptile.Tile) []int {
	return SearchBound(f, t.Bound())
}
