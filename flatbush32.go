package flatbush

// Flatbush32 is a spatial index for efficient 2D queries.
// The coordinates are 32-bit floats.
type Flatbush32 = Flatbush[float32]

// Box32 is a rectangle with 32-bit float coordinates.
type Box32 = Box[float32]

// Create a new float32 Flatbush
func NewFlatbush32(opts ...Option) *Flatbush32 {
	return NewFlatbush[float32](opts...)
}
