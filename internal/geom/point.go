// Package geom provides integer grid coordinates and the small amount
// of grid math the simulation needs.
package geom

// Point is a 2D grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clamp returns p restricted to the rectangle [0,w) × [0,h).
func (p Point) Clamp(w, h int) Point {
	x := p.X
	y := p.Y
	if x < 0 {
		x = 0
	}
	if x > w-1 {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y > h-1 {
		y = h - 1
	}
	return Point{X: x, Y: y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
