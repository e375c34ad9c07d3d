package hull

// Called by the scans after every candidate is processed. A nil recorder
// records nothing.
type recorder func(candidate Vertex, partial Hull)

func (r recorder) record(candidate Vertex, partial Hull) {
	if r != nil {
		r(candidate, partial)
	}
}

// A recorder appending to the trace. Partial hulls are copied, since the
// scans keep mutating their stacks.
func (t *Trace) recorder(n int) recorder {
	return func(candidate Vertex, partial Hull) {
		step := Step{
			Candidate: candidate,
			Partial:   append(Hull(nil), partial...),
		}
		step.OnHull = step.Partial.OnHull(n)
		*t = append(*t, step)
	}
}

// The last step, which holds the finished hull. ok is false for an empty trace.
func (t Trace) Final() (step Step, ok bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}
