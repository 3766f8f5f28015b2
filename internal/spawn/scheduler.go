package spawn

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duckhunt/internal/core"
	"github.com/vovakirdan/tui-duckhunt/internal/level"
)

// Session is the feedback surface the scheduler needs from the session
// controller. The per-cycle win/lose check is a redundant safety stop on
// top of the controller's own transition: it prevents an orphan emission
// in the tick right after a session-ending event.
type Session interface {
	// GoodQuotaMet reports whether enough good ducks have been clicked.
	GoodQuotaMet() bool

	// TimeExpired reports whether the countdown has reached zero.
	TimeExpired() bool

	// TargetSpawned is called once per emission, of either kind.
	TargetSpawned()
}

// Sink receives spawn notifications for the presentation layer, which owns
// the visible lifetime of every duck.
type Sink interface {
	// TargetSpawned announces a newly emitted duck.
	TargetSpawned(t Target)

	// TargetsCleared instructs the presentation to discard all visible ducks.
	TargetsCleared()
}

// Scheduler owns the timed emission loop. It is advanced cooperatively via
// Advance; all decision logic within one emission cycle runs atomically
// with respect to the session state.
type Scheduler struct {
	cfg     *level.Config
	rng     core.Source
	session Session
	sink    Sink
	logger  *log.Logger

	area    core.Rect // Play area; spawn positions stay inside area minus padding
	padding int

	running        bool
	elapsed        float64 // Seconds accumulated toward the next emission attempt
	goodRemaining  int     // Informational; does not gate emission
	decoyRemaining int     // Gates decoy emission
	totalGood      int     // Compared against MaxGoodSpawns
	nextID         int

	active []Target
}

// New creates a scheduler drawing from the given random source.
// Area and padding define the rectangle spawn positions are drawn from.
func New(rng core.Source, area core.Rect, padding int, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		rng:     rng,
		area:    area,
		padding: padding,
		logger:  logger,
	}
}

// Bind attaches the session feedback surface and the presentation sink.
// Both are required before Start; binding is separate from construction so
// the controller and scheduler can reference each other without globals.
func (s *Scheduler) Bind(session Session, sink Sink) {
	s.session = session
	s.sink = sink
}

// SetArea updates the spawn rectangle, e.g. after a terminal resize.
func (s *Scheduler) SetArea(area core.Rect) {
	s.area = area
}

// Start initializes quotas and begins the emission loop for the given
// level. Starting while already running replaces the prior run: the old
// loop is cancelled first and its pending emission is abandoned.
func (s *Scheduler) Start(cfg *level.Config) {
	if cfg == nil {
		s.logger.Error("spawn: start called without a level config")
		return
	}
	if s.running {
		s.Stop()
	}

	s.cfg = cfg
	s.goodRemaining = cfg.GoodRequired
	s.decoyRemaining = cfg.DecoyTotal
	s.totalGood = 0
	s.elapsed = 0
	s.ClearActive()
	s.running = true
}

// Stop halts the emission loop. Idempotent; effective immediately — no
// emission can occur after Stop returns because the accumulated wait is
// discarded.
func (s *Scheduler) Stop() {
	s.running = false
	s.elapsed = 0
}

// Running reports whether the emission loop is active.
func (s *Scheduler) Running() bool {
	return s.running
}

// ClearActive discards all tracked targets and instructs the presentation
// layer to do the same with their visuals.
func (s *Scheduler) ClearActive() {
	s.active = s.active[:0]
	if s.sink != nil {
		s.sink.TargetsCleared()
	}
}

// Active returns the targets emitted during the current run.
// Only Start, Stop, and ClearActive remove entries.
func (s *Scheduler) Active() []Target {
	return s.active
}

// TotalGoodSpawned returns the number of good emissions this run.
func (s *Scheduler) TotalGoodSpawned() int {
	return s.totalGood
}

// DecoyRemaining returns the undrawn decoy quota for this run.
func (s *Scheduler) DecoyRemaining() int {
	return s.decoyRemaining
}

// Advance moves the emission loop forward by dt seconds. One emission
// attempt fires per full SpawnInterval elapsed. The caller (the session
// tick) only advances while the session is Playing, so pause suspends the
// loop's wait consistently with the countdown clock.
func (s *Scheduler) Advance(dt float64) {
	if !s.running || s.cfg == nil {
		return
	}

	s.elapsed += dt
	for s.elapsed >= s.cfg.SpawnInterval {
		// Safety stop: never emit into a session that has already been
		// decided, even if the controller's own stop has not landed yet.
		if s.session != nil && (s.session.GoodQuotaMet() || s.session.TimeExpired()) {
			s.Stop()
			return
		}

		s.elapsed -= s.cfg.SpawnInterval
		s.emit()

		if !s.running {
			return
		}
	}
}

// emit runs one emission cycle: decide type, apply the quota policy, and
// notify the session and the presentation layer.
func (s *Scheduler) emit() {
	wantGood := s.shouldSpawnGood()

	var kind Kind
	switch {
	case wantGood && s.totalGood < s.cfg.MaxGoodSpawns:
		kind = KindGood
	case s.decoyRemaining > 0:
		kind = KindDecoy
	case s.totalGood < s.cfg.MaxGoodSpawns:
		// Forced fallback when decoys are exhausted.
		kind = KindGood
	default:
		// Both quotas exhausted; nothing to emit this cycle.
		return
	}

	x, y, ok := s.pickPosition()
	if !ok {
		s.logger.Error("spawn: play area smaller than padding, skipping cycle",
			"area_w", s.area.W, "area_h", s.area.H, "padding", s.padding)
		return
	}

	t := Target{
		ID:       s.nextID,
		Kind:     kind,
		Size:     s.pickSize(),
		X:        x,
		Y:        y,
		Lifetime: s.cfg.DuckLifetime,
	}
	s.nextID++

	switch kind {
	case KindGood:
		s.totalGood++
		if s.goodRemaining > 0 {
			s.goodRemaining--
		}
	case KindDecoy:
		s.decoyRemaining--
	}

	s.active = append(s.active, t)
	if s.session != nil {
		s.session.TargetSpawned()
	}
	if s.sink != nil {
		s.sink.TargetSpawned(t)
	}
}

// shouldSpawnGood decides the preferred type for this cycle.
// The probability of good self-balances against the remaining decoy quota:
// decoys dominate early, good ducks take over as decoys run out.
func (s *Scheduler) shouldSpawnGood() bool {
	if s.totalGood >= s.cfg.MaxGoodSpawns {
		return false
	}
	if s.decoyRemaining <= 0 {
		return true
	}

	p := 1.0 / float64(s.decoyRemaining+1)
	p += s.rng.Float64()*0.2 - 0.1
	p = core.ClampF(p, 0, 1)
	return s.rng.Float64() < p
}

// pickSize selects a size class by cumulative thresholds over the
// configured weights. Weights are taken literally; mass not covered by
// large+medium falls to small.
func (s *Scheduler) pickSize() Size {
	r := s.rng.Float64()
	if r < s.cfg.Sizes.Large {
		return SizeLarge
	}
	if r < s.cfg.Sizes.Large+s.cfg.Sizes.Medium {
		return SizeMedium
	}
	return SizeSmall
}

// pickPosition draws a uniform position inside the play area minus padding.
// Returns false when the padded area is degenerate.
func (s *Scheduler) pickPosition() (int, int, bool) {
	inner := s.area.Inset(s.padding)
	if inner.W <= 0 || inner.H <= 0 {
		return 0, 0, false
	}
	return inner.X + s.rng.Intn(inner.W), inner.Y + s.rng.Intn(inner.H), true
}
