package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{LevelID: 1, Score: 120, Outcome: "game_over", GoodClicked: 3, GoodMissed: 2, DurationSecs: 28},
		{LevelID: 2, Score: 540, Outcome: "level_complete", GoodClicked: 5, DurationSecs: 22},
		{LevelID: 3, Score: 310, Outcome: "game_complete", GoodClicked: 5, DurationSecs: 45},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 540 || top[1].Score != 310 || top[2].Score != 120 {
		t.Errorf("runs not ordered by score: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Outcome != "level_complete" || top[0].LevelID != 2 {
		t.Errorf("top run fields mismatch: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Errorf("created_at not populated")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunEntry{LevelID: 1, Score: i * 10, Outcome: "game_over"}); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("expected limit of 3, got %d", len(top))
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("failed to query best score: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 on an empty store, got %d", best)
	}

	store.SaveRun(RunEntry{LevelID: 1, Score: 200, Outcome: "game_over"})
	store.SaveRun(RunEntry{LevelID: 1, Score: 450, Outcome: "level_complete"})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("failed to query best score: %v", err)
	}
	if best != 450 {
		t.Errorf("expected best score 450, got %d", best)
	}
}

func TestStatsByLevel(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: 1, Score: 100, Outcome: "game_over"})
	store.SaveRun(RunEntry{LevelID: 1, Score: 300, Outcome: "level_complete"})
	store.SaveRun(RunEntry{LevelID: 2, Score: 500, Outcome: "game_complete"})

	stats, err := store.StatsByLevel()
	if err != nil {
		t.Fatalf("failed to query stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 levels, got %d", len(stats))
	}

	lv1 := stats[0]
	if lv1.LevelID != 1 || lv1.RunsCount != 2 || lv1.BestScore != 300 || lv1.Wins != 1 {
		t.Errorf("level 1 stats mismatch: %+v", lv1)
	}
	if lv1.AvgScore != 200 {
		t.Errorf("level 1 avg mismatch: %g", lv1.AvgScore)
	}

	lv2 := stats[1]
	if lv2.LevelID != 2 || lv2.RunsCount != 1 || lv2.Wins != 1 {
		t.Errorf("level 2 stats mismatch: %+v", lv2)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: 1, Score: 100, Outcome: "game_over"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("failed to clear runs: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(top))
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store in nested path: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(RunEntry{LevelID: 1, Score: 10, Outcome: "game_over"}); err != nil {
		t.Errorf("store at nested path not usable: %v", err)
	}
}
