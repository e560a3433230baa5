// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Overlaps reports whether two circles intersect. Touching circles do not
// overlap: the distance must be strictly less than the sum of the radii.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Contains reports whether a point lies strictly inside the circle
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Rect represents an axis-aligned rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rectangle.
// The lower edges are inclusive and the upper edges exclusive.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Intersects reports whether two rectangles share any area
func (r Rect) Intersects(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}

// QuadTree partitions points in a region so area queries only visit
// nearby quadrants.
type QuadTree[T any] struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []T
	Divided   bool
	NorthWest *QuadTree[T]
	NorthEast *QuadTree[T]
	SouthWest *QuadTree[T]
	SouthEast *QuadTree[T]
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree[T any](boundary Rect, capacity int) *QuadTree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree[T]{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]T, 0, capacity),
	}
}

// Insert stores object at point. It returns false if the point is outside
// the tree's boundary.
func (qt *QuadTree[T]) Insert(point Vector2D, object T) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if len(qt.Points) < qt.Capacity && !qt.Divided {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.subdivide()
	}

	return qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object)
}

// subdivide splits the quadtree into four quadrants
func (qt *QuadTree[T]) subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	qt.NorthWest = NewQuadTree[T](Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.NorthEast = NewQuadTree[T](Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthWest = NewQuadTree[T](Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthEast = NewQuadTree[T](Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.Divided = true
}

// Query returns every object whose point lies inside area
func (qt *QuadTree[T]) Query(area Rect) []T {
	var found []T
	qt.query(area, &found)
	return found
}

func (qt *QuadTree[T]) query(area Rect, found *[]T) {
	if !qt.Boundary.Intersects(area) {
		return
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			*found = append(*found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return
	}

	qt.NorthWest.query(area, found)
	qt.NorthEast.query(area, found)
	qt.SouthWest.query(area, found)
	qt.SouthEast.query(area, found)
}

// QueryRadius returns every object within radius of center
func (qt *QuadTree[T]) QueryRadius(center Vector2D, radius float64) []T {
	var found []T
	qt.queryRadius(Circle{Center: center, Radius: radius}, &found)
	return found
}

func (qt *QuadTree[T]) queryRadius(c Circle, found *[]T) {
	box := Rect{Center: c.Center, Width: c.Radius * 2, Height: c.Radius * 2}
	if !qt.Boundary.Intersects(box) {
		return
	}
	for i, point := range qt.Points {
		if c.Center.Distance(point) <= c.Radius {
			*found = append(*found, qt.Objects[i])
		}
	}
	if !qt.Divided {
		return
	}
	qt.NorthWest.queryRadius(c, found)
	qt.NorthEast.queryRadius(c, found)
	qt.SouthWest.queryRadius(c, found)
	qt.SouthEast.queryRadius(c, found)
}
