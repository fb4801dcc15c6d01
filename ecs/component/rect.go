package component

import "github.com/jakecoffman/cp"

// RectAt returns an axis-aligned rect of the given size centered on c.
func RectAt(c, size cp.Vector) cp.BB {
	return cp.NewBBForExtents(c, size.X/2, size.Y/2)
}

// RectCenter returns the center point of r.
func RectCenter(r cp.BB) cp.Vector {
	return cp.Vector{X: (r.L + r.R) / 2, Y: (r.B + r.T) / 2}
}

// RectSize returns the width and height of r as a vector.
func RectSize(r cp.BB) cp.Vector {
	return cp.Vector{X: r.R - r.L, Y: r.T - r.B}
}

// Translate moves r by d.
func Translate(r cp.BB, d cp.Vector) cp.BB {
	return cp.BB{L: r.L + d.X, B: r.B + d.Y, R: r.R + d.X, T: r.T + d.Y}
}
