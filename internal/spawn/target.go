// Package spawn implements the quota-driven stochastic duck spawner.
// The scheduler decides when and what type of duck to emit next, respecting
// per-level quotas and the hard cap on good emissions. It is advanced by the
// session's tick, so pausing the session pauses spawning as well.
package spawn

// Kind distinguishes good ducks from decoys.
type Kind int

const (
	// KindGood counts toward the win quota when clicked.
	KindGood Kind = iota
	// KindDecoy penalizes remaining time when clicked.
	KindDecoy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindDecoy:
		return "decoy"
	default:
		return "unknown"
	}
}

// Size is the cosmetic size class of a duck.
type Size int

const (
	SizeLarge Size = iota
	SizeMedium
	SizeSmall
)

// String returns a human-readable name for the size class.
func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Target is a single emitted duck. The scheduler tracks emitted targets;
// the presentation layer owns their visible lifetime and reports clicks,
// misses, and expiries back to the session.
type Target struct {
	ID       int
	Kind     Kind
	Size     Size
	X, Y     int     // Spawn position in play-area cells
	Lifetime float64 // Seconds before the duck auto-expires
}

// Points returns the score value of clicking this target.
// Smaller ducks are worth more; decoys are worth nothing.
func (t Target) Points() int {
	if t.Kind != KindGood {
		return 0
	}
	switch t.Size {
	case SizeSmall:
		return 30
	case SizeMedium:
		return 20
	default:
		return 10
	}
}
