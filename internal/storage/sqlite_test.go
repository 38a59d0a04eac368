package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// insertScore adds a bare score row, as older arcade builds did for every game.
func insertScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score); err != nil {
		t.Fatalf("insert score: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchResult{PlayerScore: 3, BotScore: 1, Winner: WinnerPlayer}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Expected 1 match after reopen, got %d", len(matches))
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		insertScore(t, store, GameID, (i+1)*100)
	}
	insertScore(t, store, "other", 900)

	scores, err := store.TopScores(GameID, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if s.GameID != GameID {
			t.Errorf("Score from wrong game: %+v", s)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, score := range []int{1, 3, 2} {
		if _, err := store.SaveMatch(MatchResult{PlayerScore: score, Winner: WinnerNone}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	high, err = store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreSaveMatch(t *testing.T) {
	store := openTestStore(t)

	want := MatchResult{
		PlayerScore: 2,
		BotScore:    3,
		Winner:      WinnerBot,
		Frames:      5400,
		Duration:    90 * time.Second,
	}
	id, err := store.SaveMatch(want)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	got := matches[0]
	if got.ID != id || got.PlayerScore != 2 || got.BotScore != 3 || got.Winner != WinnerBot || got.Frames != 5400 {
		t.Errorf("Match mismatch: got %+v", got)
	}
	if got.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", got.Duration)
	}

	// The player's score doubles as a high score entry.
	high, _ := store.HighScore(GameID)
	if high != 2 {
		t.Errorf("HighScore() = %d, want 2", high)
	}
}

func TestStoreSaveMatchRejectsUnknownWinner(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchResult{Winner: "draw"}); err == nil {
		t.Fatal("Expected error for unknown winner")
	}

	matches, _ := store.RecentMatches(10)
	scores, _ := store.TopScores(GameID, 10)
	if len(matches) != 0 || len(scores) != 0 {
		t.Errorf("Rejected match left rows behind: %d matches, %d scores", len(matches), len(scores))
	}
}

func TestStoreRecentMatchesOrder(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveMatch(MatchResult{PlayerScore: i, Winner: WinnerNone})
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	for i, want := range []int{4, 3, 2} {
		if matches[i].PlayerScore != want {
			t.Errorf("matches[%d].PlayerScore = %d, want %d", i, matches[i].PlayerScore, want)
		}
	}
}

func TestStoreMatchStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.MatchStats()
	if err != nil {
		t.Fatalf("MatchStats() on empty store failed: %v", err)
	}
	if stats.Matches != 0 || !stats.LastPlayed.IsZero() || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	results := []MatchResult{
		{PlayerScore: 3, BotScore: 1, Winner: WinnerPlayer, Frames: 100},
		{PlayerScore: 3, BotScore: 2, Winner: WinnerPlayer, Frames: 200},
		{PlayerScore: 0, BotScore: 3, Winner: WinnerBot, Frames: 300},
		{PlayerScore: 1, BotScore: 0, Winner: WinnerNone, Frames: 50},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	stats, err = store.MatchStats()
	if err != nil {
		t.Fatalf("MatchStats() failed: %v", err)
	}

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"matches", int64(stats.Matches), 4},
		{"player wins", int64(stats.PlayerWins), 2},
		{"bot wins", int64(stats.BotWins), 1},
		{"unfinished", int64(stats.Unfinished), 1},
		{"best score", int64(stats.BestScore), 3},
		{"total frames", stats.TotalFrames, 650},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if rate := stats.WinRate(); rate < 0.666 || rate > 0.667 {
		t.Errorf("WinRate() = %v, want 2/3", rate)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchResult{PlayerScore: 1, Winner: WinnerBot})
	insertScore(t, store, "other", 300)

	if err := store.ClearScores(GameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(GameID, 10)
	matches, _ := store.RecentMatches(10)
	if len(scores) != 0 || len(matches) != 0 {
		t.Errorf("Expected empty duel history, got %d scores and %d matches", len(scores), len(matches))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected")
	}
}
