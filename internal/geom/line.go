package geom

// LinePath traces a Bresenham line from start to end and returns the
// visited points, excluding the starting cell. Used for cast-path
// animation; the endpoint is always the last element when start != end.
func LinePath(start, end Point) []Point {
	var path []Point
	x := start.X
	y := start.Y
	dx := Abs(end.X - start.X)
	dy := -Abs(end.Y - start.Y)
	sx := 1
	if start.X >= end.X {
		sx = -1
	}
	sy := 1
	if start.Y >= end.Y {
		sy = -1
	}
	err := dx + dy
	for {
		path = append(path, Point{X: x, Y: y})
		if x == end.X && y == end.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return path[1:]
}
