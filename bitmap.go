package flatbush

import "github.com/RoaringBitmap/roaring/v2"

// SearchBitmap adds the index of every box that overlaps the query box to into,
// and returns it. A nil into allocates a new bitmap. The existing contents of
// into are kept, so passing the same bitmap to several searches yields the union
// of their results.
//
// Indices are stored as uint32, so this is only meaningful for indexes with
// fewer than 1<<32 boxes.
func (f *Flatbush[TFloat]) SearchBitmap(minX, minY, maxX, maxY TFloat, into *roaring.Bitmap) *roaring.Bitmap {
	if into == nil {
		into = roaring.New()
	}
	f.visit(minX, minY, maxX, maxY, func(index int) {
		into.Add(uint32(index))
	})
	return into
}
