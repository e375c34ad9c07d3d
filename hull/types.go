package hull

// Points are values, and the hull functions never modify the slice they are
// given. Identity is carried by the original index in a Vertex, not by
// pointers, so a hull can always be mapped back to the caller's input.
type Point struct {
	X float64
	Y float64
}

// A point paired with its position in the input slice.
type Vertex struct {
	Point
	Index int
}

// The boundary of a convex hull in counterclockwise order. The polygon is
// implicitly closed: the last vertex connects back to the first.
type Hull []Vertex

// The rotational direction of three ordered points.
type Turn int

const (
	Clockwise Turn = iota - 1
	Collinear
	CounterClockwise
)

var turnLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (t Turn) String() string {
	if t < Clockwise || t > CounterClockwise {
		return "Turn(invalid)"
	}
	return turnLabels[int(t+1)]
}

// One state of an incremental hull construction.
type Step struct {
	// The vertex that was just processed
	Candidate Vertex
	// The hull as it stands after processing the candidate. For the monotone
	// chain this is the lower chain followed by the reversed upper chain.
	Partial Hull
	// Indexed by original index, true for vertices currently in Partial
	OnHull []bool
}

type Trace []Step

type VertexStack []Vertex
