package game

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duckhunt/internal/level"
)

// DefaultLives is the starting life count. Lives are tracked and reported
// but no core rule decrements them; the field exists for interface
// compatibility with front ends that display it.
const DefaultLives = 3

// timeBonusRate is the score awarded per remaining second on a win.
const timeBonusRate = 10

// Controller owns the session state machine, the countdown clock, the
// score, and the win/lose decision logic. It is driven by an external tick
// and by click/expire reports from the presentation layer. All mutating
// operations are silent no-ops outside their required source states, so
// out-of-order external calls cannot corrupt the machine.
type Controller struct {
	cfg     *level.Config
	levels  LevelSource
	spawner Spawner
	logger  *log.Logger

	state        State
	score        int
	lives        int
	timeLeft     float64
	goodClicked  int
	goodMissed   int
	totalSpawned int
	startedAt    time.Time

	listeners []Listener
}

// NewController creates a session controller over the given level source.
func NewController(levels LevelSource, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		levels: levels,
		logger: logger,
		state:  StateMenu,
		lives:  DefaultLives,
	}
}

// AttachSpawner wires the spawn scheduler. The controller starts it on
// StartGame, advances it from Tick, and stops it when the session ends.
func (c *Controller) AttachSpawner(s Spawner) {
	c.spawner = s
}

// AddListener subscribes to session notifications.
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// State returns the current state machine position.
func (c *Controller) State() State { return c.state }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// Lives returns the tracked life count.
func (c *Controller) Lives() int { return c.lives }

// TimeLeft returns the remaining time in seconds.
func (c *Controller) TimeLeft() float64 { return c.timeLeft }

// GoodClicked returns the number of good ducks clicked this level.
func (c *Controller) GoodClicked() int { return c.goodClicked }

// GoodMissed returns the number of good ducks that expired unclicked.
func (c *Controller) GoodMissed() int { return c.goodMissed }

// TotalSpawned returns the number of ducks emitted this level.
func (c *Controller) TotalSpawned() int { return c.totalSpawned }

// Level returns the currently loaded level config, or nil.
func (c *Controller) Level() *level.Config { return c.cfg }

// Elapsed returns wall time since the session started.
func (c *Controller) Elapsed() time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	return time.Since(c.startedAt)
}

// LoadLevel installs a level config: resets the clock and the per-level
// counters, retains the current state, and announces the level. A nil
// config is logged and ignored.
func (c *Controller) LoadLevel(cfg *level.Config) {
	if cfg == nil {
		c.logger.Error("game: load level called without a config")
		return
	}

	c.cfg = cfg
	c.timeLeft = cfg.TimeLimit
	c.goodClicked = 0
	c.goodMissed = 0
	c.totalSpawned = 0

	c.emitLevelLoaded()
}

// StartGame begins play on the loaded level. fromMenu re-announces the
// level so the front end can retrigger music and intro UI only when
// entering from the menu, not on mid-game level transitions.
func (c *Controller) StartGame(fromMenu bool) {
	if c.cfg == nil {
		c.logger.Error("game: start requested with no level loaded")
		return
	}
	if c.spawner == nil {
		c.logger.Error("game: start requested with no spawner attached")
		return
	}

	c.state = StatePlaying
	if fromMenu {
		c.emitLevelLoaded()
	}
	c.spawner.Start(c.cfg)
	c.startedAt = time.Now()
	c.emitStateChanged()
}

// Tick advances the countdown and the spawn loop by dt seconds. Only
// effective while Playing, which is what suspends both timers during
// pause. A tick that exhausts the clock loses the game.
func (c *Controller) Tick(dt float64) {
	if c.state != StatePlaying {
		return
	}

	c.timeLeft = math.Max(0, c.timeLeft-dt)
	c.emitTimeChanged()

	if c.timeLeft <= 0 {
		c.EndGame(false)
		return
	}

	c.spawner.Advance(dt)
}

// OnGoodTargetClicked records a good duck click. Reaching the level quota
// wins immediately.
func (c *Controller) OnGoodTargetClicked(points int) {
	if c.state != StatePlaying {
		return
	}

	c.score += points
	c.goodClicked++
	c.emitScoreChanged()

	if c.goodClicked >= c.cfg.GoodRequired {
		c.EndGame(true)
	}
}

// OnGoodTargetMissed records a good duck expiring unclicked.
// Statistics only; no scoring effect.
func (c *Controller) OnGoodTargetMissed() {
	if c.state != StatePlaying {
		return
	}
	c.goodMissed++
}

// OnDecoyTargetClicked deducts the decoy penalty from the clock, clamped
// at zero. Draining the clock loses the game.
func (c *Controller) OnDecoyTargetClicked() {
	if c.state != StatePlaying {
		return
	}

	c.timeLeft = math.Max(0, c.timeLeft-c.cfg.DecoyPenalty)
	c.emitTimeChanged()

	if c.timeLeft <= 0 {
		c.EndGame(false)
	}
}

// OnDecoyTargetExpired records a decoy expiring unclicked.
// Reserved extension point; currently no effect.
func (c *Controller) OnDecoyTargetExpired() {
	if c.state != StatePlaying {
		return
	}
}

// TargetSpawned counts an emission of either kind. Statistics only.
// Satisfies the scheduler's session feedback surface.
func (c *Controller) TargetSpawned() {
	c.totalSpawned++
}

// GoodQuotaMet reports whether the win quota has been reached.
// Part of the scheduler's redundant per-cycle safety check.
func (c *Controller) GoodQuotaMet() bool {
	return c.cfg != nil && c.goodClicked >= c.cfg.GoodRequired
}

// TimeExpired reports whether the countdown has reached zero.
func (c *Controller) TimeExpired() bool {
	return c.timeLeft <= 0
}

// EndGame resolves the session: LevelComplete on a win, GameOver on a
// loss. Stops the spawner either way. A win converts remaining time into
// a score bonus.
func (c *Controller) EndGame(won bool) {
	if c.state != StatePlaying {
		return
	}

	if won {
		c.state = StateLevelComplete
	} else {
		c.state = StateGameOver
	}

	if c.spawner != nil {
		c.spawner.Stop()
	}
	c.emitStateChanged()

	if won {
		bonus := int(math.Round(c.timeLeft * timeBonusRate))
		c.score += bonus
		c.emitScoreChanged()
	}
}

// AdvanceToNextLevel moves from a completed level to the next one, or to
// GameComplete when the campaign is exhausted.
func (c *Controller) AdvanceToNextLevel() {
	if c.state != StateLevelComplete {
		return
	}
	if c.levels == nil {
		c.logger.Error("game: advance requested with no level source")
		return
	}

	nextID, ok := c.levels.NextID(c.cfg.ID)
	if !ok {
		c.state = StateGameComplete
		c.emitStateChanged()
		return
	}

	cfg, err := c.levels.Load(nextID)
	if err != nil {
		c.logger.Error("game: failed to load next level", "id", nextID, "error", err)
		return
	}

	c.LoadLevel(cfg)
	c.StartGame(false)
}

// TogglePause switches between Playing and Paused. No-op from any other
// state. Because Tick is gated on Playing, pausing suspends both the
// countdown and the spawn loop.
func (c *Controller) TogglePause() {
	switch c.state {
	case StatePlaying:
		c.state = StatePaused
	case StatePaused:
		c.state = StatePlaying
	default:
		return
	}
	c.emitStateChanged()
}

// RestartLevel hard-resets the session to its initial defaults, reloads
// the first campaign level, and returns to the menu.
func (c *Controller) RestartLevel() {
	if c.spawner != nil {
		c.spawner.Stop()
	}

	c.score = 0
	c.lives = DefaultLives
	c.goodClicked = 0
	c.goodMissed = 0
	c.totalSpawned = 0
	c.emitScoreChanged()
	c.emitLivesChanged()

	if c.levels != nil {
		cfg, err := c.levels.Load(c.levels.FirstID())
		if err != nil {
			c.logger.Error("game: failed to reload first level", "error", err)
		} else {
			c.LoadLevel(cfg)
		}
	}

	c.state = StateMenu
	c.emitStateChanged()
}

func (c *Controller) emitScoreChanged() {
	for _, l := range c.listeners {
		l.ScoreChanged(c.score)
	}
}

func (c *Controller) emitLivesChanged() {
	for _, l := range c.listeners {
		l.LivesChanged(c.lives)
	}
}

func (c *Controller) emitTimeChanged() {
	for _, l := range c.listeners {
		l.TimeChanged(c.timeLeft)
	}
}

func (c *Controller) emitStateChanged() {
	for _, l := range c.listeners {
		l.StateChanged(c.state)
	}
}

func (c *Controller) emitLevelLoaded() {
	for _, l := range c.listeners {
		l.LevelLoaded(c.cfg)
	}
}
