package game

import "github.com/vovakirdan/tui-duckhunt/internal/level"

// Listener receives session notifications. The presentation layer
// implements this to drive HUD, audio, and screen transitions without the
// controller knowing anything about rendering. Listeners are invoked
// synchronously on the tick goroutine, in registration order.
type Listener interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	TimeChanged(timeLeft float64)
	StateChanged(state State)
	LevelLoaded(cfg *level.Config)
}

// NopListener is a Listener with empty methods, for embedding when only a
// subset of notifications matters.
type NopListener struct{}

func (NopListener) ScoreChanged(int) {}
func (NopListener) LivesChanged(int) {}
func (NopListener) TimeChanged(float64) {}
func (NopListener) StateChanged(State) {}
func (NopListener) LevelLoaded(*level.Config) {}

// Spawner is the controller's view of the spawn scheduler. The controller
// starts it with the current level, advances it while Playing, and stops it
// when the session ends.
type Spawner interface {
	Start(cfg *level.Config)
	Stop()
	Advance(dt float64)
}

// LevelSource supplies level configs by id and the campaign ordering.
// Absence of a next id is the game-complete condition.
type LevelSource interface {
	Load(id int) (*level.Config, error)
	NextID(id int) (int, bool)
	FirstID() int
}
