package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duckhunt/internal/core"
	"github.com/vovakirdan/tui-duckhunt/internal/game"
	"github.com/vovakirdan/tui-duckhunt/internal/level"
	"github.com/vovakirdan/tui-duckhunt/internal/spawn"
	"github.com/vovakirdan/tui-duckhunt/internal/storage"
)

// footerRows is the number of terminal rows reserved below the screen
// buffer for the time bar and the help line.
const footerRows = 2

// tagLetters is the pool of tag keys assigned to visible ducks.
var tagLetters = []rune("asdfghjklzxcvbnmqwetyuio")

// duckSprites maps size classes to their ASCII sprites.
var duckSprites = map[spawn.Size]string{
	spawn.SizeLarge:  "<(o )=",
	spawn.SizeMedium: "<(o)",
	spawn.SizeSmall:  "<o)",
}

// duck is a visible target. The presentation layer owns its lifetime:
// when remaining hits zero the duck expires and the session is told.
type duck struct {
	target    spawn.Target
	remaining float64
	tag       rune
}

// engine bundles the controller, the scheduler, and the HUD snapshot kept
// current via session notifications. It lives behind a pointer so the
// Bubble Tea model (a value) and the engine callbacks see the same state.
type engine struct {
	ctrl  *game.Controller
	sched *spawn.Scheduler

	ducks []duck

	// HUD snapshot, updated by Listener callbacks
	score    int
	lives    int
	timeLeft float64
	state    game.State
	cfg      *level.Config
}

// engine implements the session notification surface.
var _ game.Listener = (*engine)(nil)

func (e *engine) ScoreChanged(score int) { e.score = score }
func (e *engine) LivesChanged(lives int) { e.lives = lives }
func (e *engine) TimeChanged(timeLeft float64) { e.timeLeft = timeLeft }
func (e *engine) StateChanged(state game.State) { e.state = state }

func (e *engine) LevelLoaded(cfg *level.Config) {
	e.cfg = cfg
	e.timeLeft = cfg.TimeLimit
}

// engine implements the spawn notification surface.
var _ spawn.Sink = (*engine)(nil)

func (e *engine) TargetSpawned(t spawn.Target) {
	e.ducks = append(e.ducks, duck{
		target:    t,
		remaining: t.Lifetime,
		tag:       e.nextFreeTag(),
	})
}

func (e *engine) TargetsCleared() {
	e.ducks = e.ducks[:0]
}

// nextFreeTag picks the first tag letter not used by a visible duck.
func (e *engine) nextFreeTag() rune {
	for _, r := range tagLetters {
		used := false
		for _, d := range e.ducks {
			if d.tag == r {
				used = true
				break
			}
		}
		if !used {
			return r
		}
	}
	return '?'
}

// removeDuck drops the duck with the given target id, if still visible.
func (e *engine) removeDuck(id int) {
	for i := range e.ducks {
		if e.ducks[i].target.ID == id {
			e.ducks = append(e.ducks[:i], e.ducks[i+1:]...)
			return
		}
	}
}

// Model is the Bubble Tea model running a duckhunt session.
type Model struct {
	eng      *engine
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     keyMap
	help     help.Model
	timebar  progress.Model
	quitting bool
	runSaved bool
}

// playArea returns the duck area for the given terminal size: everything
// inside the border box, below the HUD row, above the footer.
func playArea(screenW, screenH int) core.Rect {
	box := boxArea(screenW, screenH)
	return box.Inset(1)
}

// boxArea returns the border box rectangle.
func boxArea(screenW, screenH int) core.Rect {
	return core.NewRect(0, 1, screenW, screenH-footerRows-1)
}

// NewModel creates a Bubble Tea model wired to a fresh engine.
func NewModel(campaign *level.Campaign, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	rng := core.NewSource(cfg.Seed)
	sched := spawn.New(rng, playArea(cfg.ScreenW, cfg.ScreenH), 1, logger)
	ctrl := game.NewController(campaign, logger)
	ctrl.AttachSpawner(sched)

	eng := &engine{
		ctrl:  ctrl,
		sched: sched,
		lives: ctrl.Lives(),
		state: ctrl.State(),
	}
	ctrl.AddListener(eng)
	sched.Bind(ctrl, eng)

	// Load the first level so the menu can show its parameters.
	if first, err := campaign.Load(campaign.FirstID()); err != nil {
		logger.Error("tui: cannot load first level", "error", err)
	} else {
		ctrl.LoadLevel(first)
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = cfg.ScreenW - 2
	bar.ShowPercentage = false

	return Model{
		eng:     eng,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		store:   store,
		config:  cfg,
		keys:    defaultKeyMap(),
		help:    help.New(),
		timebar: bar,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.eng.ctrl.TogglePause()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.eng.ctrl.RestartLevel()
		m.runSaved = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.eng.state {
		case game.StateMenu:
			m.eng.ctrl.StartGame(true)
			m.runSaved = false
		case game.StateLevelComplete:
			m.eng.ctrl.AdvanceToNextLevel()
		}
		return m, nil
	}

	// Tag keys shoot the matching duck while playing.
	if m.eng.state == game.StatePlaying {
		runes := []rune(msg.String())
		if len(runes) == 1 {
			for _, d := range m.eng.ducks {
				if d.tag == runes[0] {
					m.shoot(d)
					break
				}
			}
		}
	}

	return m, nil
}

// handleMouse shoots the duck under the cursor on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.eng.state != game.StatePlaying {
		return m, nil
	}

	for _, d := range m.eng.ducks {
		sprite := duckSprites[d.target.Size]
		hit := core.NewRect(d.target.X, d.target.Y, len(sprite), 1)
		if hit.Contains(msg.X, msg.Y) {
			m.shoot(d)
			break
		}
	}

	return m, nil
}

// shoot reports a duck click to the session and removes the visual.
func (m Model) shoot(d duck) {
	if d.target.Kind == spawn.KindGood {
		m.eng.ctrl.OnGoodTargetClicked(d.target.Points())
	} else {
		m.eng.ctrl.OnDecoyTargetClicked()
	}
	m.eng.removeDuck(d.target.ID)
}

// handleResize adapts the screen buffer and the spawn area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.eng.sched.SetArea(playArea(msg.Width, msg.Height))
	m.timebar.Width = msg.Width - 2
	return m, nil
}

// handleTick drives the engine by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)

	m.eng.ctrl.Tick(dt)
	m.ageDucks(dt)
	m.saveRunIfOver()

	return m, tickCmd(m.config.TickRate)
}

// ageDucks counts down visible duck lifetimes and reports expiries.
// Lifetimes only advance while Playing so pause freezes ducks too.
func (m Model) ageDucks(dt float64) {
	if m.eng.state != game.StatePlaying {
		return
	}

	alive := m.eng.ducks[:0]
	for _, d := range m.eng.ducks {
		d.remaining -= dt
		if d.remaining > 0 {
			alive = append(alive, d)
			continue
		}
		if d.target.Kind == spawn.KindGood {
			m.eng.ctrl.OnGoodTargetMissed()
		} else {
			m.eng.ctrl.OnDecoyTargetExpired()
		}
	}
	m.eng.ducks = alive
}

// saveRunIfOver persists the run once when a play-through ends.
func (m *Model) saveRunIfOver() {
	if m.runSaved || m.store == nil || !m.eng.state.Terminal() {
		return
	}
	if m.eng.cfg == nil {
		return
	}

	run := storage.RunEntry{
		LevelID:      m.eng.cfg.ID,
		Score:        m.eng.score,
		Outcome:      m.eng.state.String(),
		GoodClicked:  m.eng.ctrl.GoodClicked(),
		GoodMissed:   m.eng.ctrl.GoodMissed(),
		DurationSecs: int(m.eng.ctrl.Elapsed().Seconds()),
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
	m.runSaved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderHUD()
	m.screen.DrawBox(boxArea(m.config.ScreenW, m.config.ScreenH))
	m.renderDucks()
	m.renderOverlay()

	pct := 0.0
	if m.eng.cfg != nil && m.eng.cfg.TimeLimit > 0 {
		pct = m.eng.timeLeft / m.eng.cfg.TimeLimit
	}

	return RenderScreen(m.screen) + "\n" +
		" " + m.timebar.ViewAs(pct) + "\n" +
		" " + m.help.View(m.keys)
}

// renderHUD draws score, quota progress, lives, and level on the top row.
func (m Model) renderHUD() {
	m.screen.DrawText(1, 0, fmt.Sprintf("Score: %d", m.eng.score))

	if m.eng.cfg != nil {
		quota := fmt.Sprintf("Ducks: %d/%d", m.eng.ctrl.GoodClicked(), m.eng.cfg.GoodRequired)
		m.screen.DrawTextCentered(0, quota)

		levelText := fmt.Sprintf("Lives: %d  Level: %d", m.eng.lives, m.eng.cfg.ID)
		m.screen.DrawText(m.screen.Width()-len(levelText)-1, 0, levelText)
	}
}

// renderDucks draws visible ducks with their tag keys.
func (m Model) renderDucks() {
	for _, d := range m.eng.ducks {
		sprite := duckSprites[d.target.Size]

		color := core.ColorYellow
		if d.target.Kind == spawn.KindDecoy {
			color = core.ColorBrightRed
		}

		m.screen.DrawTextColored(d.target.X, d.target.Y, sprite, color)
		m.screen.SetCell(d.target.X, d.target.Y-1, d.tag, core.ColorCyan)
	}
}

// renderOverlay draws state-dependent message boxes.
func (m Model) renderOverlay() {
	switch m.eng.state {
	case game.StateMenu:
		m.drawCenteredBox("DUCK HUNT", "Press ENTER to start")

	case game.StatePaused:
		m.drawCenteredBox("PAUSED", "Press P to resume")

	case game.StateLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  ENTER for next level", m.eng.score)
		m.drawCenteredBox("LEVEL CLEAR", subtitle)

	case game.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", m.eng.score)
		m.drawCenteredBox("GAME OVER", subtitle)

	case game.StateGameComplete:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", m.eng.score)
		m.drawCenteredBox("YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (m Model) drawCenteredBox(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)

	m.screen.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	m.screen.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(campaign *level.Campaign, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(campaign, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Ducks are shot by mouse click
	)

	_, err := p.Run()
	return err
}
