package obj

// Direction is a facing. The values match the sprite sheet row order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Row returns the sprite sheet row for this facing.
func (d Direction) Row() int {
	return int(d)
}

// DirectionFromMovement derives a facing from a movement vector, horizontal
// axis first. The second return is false when the vector is zero, in which
// case the caller keeps its current facing.
func DirectionFromMovement(dx, dy float64) (Direction, bool) {
	switch {
	case dx > 0:
		return East, true
	case dx < 0:
		return West, true
	case dy > 0:
		return South, true
	case dy < 0:
		return North, true
	}
	return East, false
}
