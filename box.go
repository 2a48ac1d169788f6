package flatbush

import "strconv"

// Float is the set of coordinate types a Flatbush can be built over.
type Float interface {
	float32 | float64
}

// Box is an axis-aligned rectangle.
type Box[T Float] struct {
	MinX T
	MinY T
	MaxX T
	MaxY T
}

// Width returns MaxX - MinX.
func (b *Box[T]) Width() T {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b *Box[T]) Height() T {
	return b.MaxY - b.MinY
}

func (b *Box[T]) centerX() float64 {
	return (float64(b.MinX) + float64(b.MaxX)) / 2
}

func (b *Box[T]) centerY() float64 {
	return (float64(b.MinY) + float64(b.MaxY)) / 2
}

// Valid reports whether the box has no NaN coordinate and min <= max on both axes.
func (b *Box[T]) Valid() bool {
	// Written this way round so that NaN fails the test.
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// PositiveUnion reports whether a and b overlap.
// Touching edges count as overlap, so this is the same inclusive test that Search uses.
func (a *Box[T]) PositiveUnion(b *Box[T]) bool {
	return b.MaxX >= a.MinX && b.MinX <= a.MaxX && b.MaxY >= a.MinY && b.MinY <= a.MaxY
}

// String returns the box as "[minX,minY,maxX,maxY]".
func (b Box[T]) String() string {
	bits := 64
	if _, ok := any(b.MinX).(float32); ok {
		bits = 32
	}
	f := func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
	return "[" + f(b.MinX) + "," + f(b.MinY) + "," + f(b.MaxX) + "," + f(b.MaxY) + "]"
}

// Extent accumulates the union of boxes. The zero value is empty,
// so there is no sentinel box that could leak into a result.
type Extent[T Float] struct {
	box   Box[T]
	valid bool
}

// Expand grows the extent to cover b.
func (e *Extent[T]) Expand(b *Box[T]) {
	if !e.valid {
		e.box = *b
		e.valid = true
		return
	}
	e.box.MinX = min(e.box.MinX, b.MinX)
	e.box.MinY = min(e.box.MinY, b.MinY)
	e.box.MaxX = max(e.box.MaxX, b.MaxX)
	e.box.MaxY = max(e.box.MaxY, b.MaxY)
}

// Empty reports whether nothing has been added to the extent.
func (e *Extent[T]) Empty() bool {
	return !e.valid
}

// Box returns the accumulated box, and false if the extent is empty.
func (e *Extent[T]) Box() (Box[T], bool) {
	return e.box, e.valid
}

func (e Extent[T]) String() string {
	if !e.valid {
		return "[]"
	}
	return e.box.String()
}
