package flatbush

import "math"

const (
	// HilbertOrder is the order of the curve used to sort items during Finish.
	// Each axis is quantized to HilbertOrder bits, so keys fit in a uint32.
	HilbertOrder = 16

	hilbertMax = (1 << HilbertOrder) - 1
)

// HilbertXYToIndex returns the distance of (x, y) along a Hilbert curve of order n (1..16).
// x and y must be less than 1<<n; higher bits are discarded.
//
// Based on https://github.com/rawrunprotected/hilbert_curves (public domain).
func HilbertXYToIndex(n uint32, x, y uint32) uint32 {
	x = (x << (16 - n)) & 0xFFFF
	y = (y << (16 - n)) & 0xFFFF

	// Initial prefix scan round, prime with x and y
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	for _, s := range [...]uint32{2, 4} {
		a, b, c, d = A, B, C, D

		A = (a & (a >> s)) ^ (b & (b >> s))
		B = (a & (b >> s)) ^ (b & ((a ^ b) >> s))
		C ^= (a & (c >> s)) ^ (b & (d >> s))
		D ^= (b & (c >> s)) ^ ((a ^ b) & (d >> s))
	}

	// Final round and projection
	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	// Undo transformation prefix scan
	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	// Recover index bits
	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	return ((interleave(i1) << 1) | interleave(i0)) >> (32 - 2*n)
}

// interleave spreads the low 16 bits of x into the even bit positions.
func interleave(x uint32) uint32 {
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}

// hilbertKey places the center of b on the HilbertOrder grid spanned by extent and returns its curve distance.
func hilbertKey[T Float](b *Box[T], extent *Box[T]) uint32 {
	x := gridCoord(b.centerX(), float64(extent.MinX), float64(extent.MaxX)-float64(extent.MinX))
	y := gridCoord(b.centerY(), float64(extent.MinY), float64(extent.MaxY)-float64(extent.MinY))
	return HilbertXYToIndex(HilbertOrder, x, y)
}

// gridCoord maps v onto [0, hilbertMax] along an axis that starts at lo and has the given length.
// A zero or non-finite length collapses the whole axis onto cell 0.
func gridCoord(v, lo, length float64) uint32 {
	if !(length > 0) || math.IsInf(length, 0) {
		return 0
	}
	c := math.Floor(hilbertMax * (v - lo) / length)
	switch {
	case c >= hilbertMax:
		return hilbertMax
	case c > 0:
		return uint32(c)
	default:
		// negative or NaN
		return 0
	}
}
