package flatbush

// Flatbush64 is a spatial index for efficient 2D queries.
// The coordinates are 64-bit floats.
type Flatbush64 = Flatbush[float64]

// Box64 is a rectangle with 64-bit float coordinates.
type Box64 = Box[float64]

// Create a new float64 Flatbush
func NewFlatbush64(opts ...Option) *Flatbush64 {
	return NewFlatbush[float64](opts...)
}
