package domain

// DivergenceState explains why a divergence count is or isn't available
type DivergenceState int

const (
	DivergenceUnknown DivergenceState = iota // zero value, nothing was computed
	DivergenceAvailable
	DivergenceNoUpstream
	DivergenceUnbornHead
	DivergenceDetached
	DivergenceUnresolved   // HEAD or upstream has no commit target
	DivergenceLookupFailed // repository query failed, see Divergence.Err
)

func (s DivergenceState) String() string {
	switch s {
	case DivergenceUnknown:
		return "unknown"
	case DivergenceAvailable:
		return "available"
	case DivergenceNoUpstream:
		return "no-upstream"
	case DivergenceUnbornHead:
		return "unborn-head"
	case DivergenceDetached:
		return "detached"
	case DivergenceUnresolved:
		return "unresolved"
	case DivergenceLookupFailed:
		return "lookup-failed"
	default:
		return "unknown"
	}
}

// Divergence holds ahead/behind counts between HEAD and its upstream.
// Counts are only meaningful when State is DivergenceAvailable.
type Divergence struct {
	Ahead  int   // Commits reachable from local but not upstream
	Behind int   // Commits reachable from upstream but not local
	Err    error // Set when State is DivergenceLookupFailed
	State  DivergenceState
}

// NewDivergence returns an available divergence
func NewDivergence(ahead, behind int) Divergence {
	return Divergence{Ahead: ahead, Behind: behind, State: DivergenceAvailable}
}

// NoDivergence returns an absent divergence with the given reason
func NoDivergence(state DivergenceState, err error) Divergence {
	return Divergence{State: state, Err: err}
}

// Available reports whether ahead/behind counts were computed
func (d Divergence) Available() bool {
	return d.State == DivergenceAvailable
}

// InSync reports whether local and upstream point at the same history
func (d Divergence) InSync() bool {
	return d.Available() && d.Ahead == 0 && d.Behind == 0
}
