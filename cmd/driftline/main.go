// Command driftline runs a headless demo session of the fishing
// simulation: it loads the reference data, plays a scripted run, and
// records the result in the codex ledger. A real front end drives the
// same Session API with player input instead.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/talgya/driftline/internal/codex"
	"github.com/talgya/driftline/internal/data"
	"github.com/talgya/driftline/internal/entropy"
	"github.com/talgya/driftline/internal/game"
	"github.com/talgya/driftline/internal/mapgen"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Driftline — tide, line and luck")

	seed := envInt64("DRIFTLINE_SEED", 42)
	turns := envInt("DRIFTLINE_TURNS", 300)
	assetDir := envStr("DRIFTLINE_ASSETS", "assets")
	dbPath := envStr("DRIFTLINE_DB", "data/codex.db")
	savePath := envStr("DRIFTLINE_SAVE", "data/save.txt")

	difficulty, err := game.ParseDifficulty(envStr("DRIFTLINE_DIFFICULTY", "Normal"))
	if err != nil {
		slog.Error("bad difficulty", "error", err)
		os.Exit(1)
	}

	// ── Reference data ───────────────────────────────────────────────
	species, err := data.LoadSpecies(filepath.Join(assetDir, "fish.json"))
	if err != nil {
		slog.Error("failed to load fish species", "error", err)
		os.Exit(1)
	}
	gear, err := data.LoadGear(filepath.Join(assetDir, "items.json"))
	if err != nil {
		slog.Error("failed to load gear items", "error", err)
		os.Exit(1)
	}
	slog.Info("reference data loaded", "species", len(species), "gear", len(gear))

	// ── Codex ledger ─────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(dbPath), 0755)
	ledger, err := codex.Open(dbPath)
	if err != nil {
		slog.Error("failed to open codex", "error", err)
		os.Exit(1)
	}
	defer ledger.Close()
	slog.Info("codex opened", "path", dbPath)

	// ── Session ──────────────────────────────────────────────────────
	session, err := game.NewSession(game.Config{
		Seed:       seed,
		Difficulty: difficulty,
		Species:    species,
		Gear:       gear,
		Ledger:     ledger,
	})
	if err != nil {
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}

	for tile, count := range session.Map.TileCounts() {
		slog.Info("terrain", "tile", mapgen.TileName(tile), "count", count)
	}

	// ── Scripted demo run ────────────────────────────────────────────
	demo := entropy.New(seed).Stream(entropy.StreamDemo)
	drained := 0
	for i := 0; i < turns; i++ {
		session.Apply(demoAction(session, demo))
		for _, e := range session.Events[drained:] {
			slog.Info("event", "turn", session.Clock.Turn, "message", e)
		}
		drained = len(session.Events)
	}
	session.Apply(game.Action{Kind: game.ActionEndRun})
	for _, e := range session.Events[drained:] {
		slog.Info("event", "turn", session.Clock.Turn, "message", e)
	}

	// ── Wrap up ──────────────────────────────────────────────────────
	score := session.Score()
	runID, err := ledger.RecordRun(seed, difficulty.String(), score)
	if err != nil {
		slog.Error("failed to record run", "error", err)
	} else {
		slog.Info("run recorded", "id", runID, "score", score)
	}

	if err := session.SaveSnapshot(savePath); err != nil {
		slog.Error("failed to save snapshot", "error", err)
	} else {
		slog.Info("snapshot saved", "path", savePath)
	}

	total, err := ledger.TotalCaptures()
	if err != nil {
		slog.Error("failed to read capture total", "error", err)
	}

	fmt.Printf("\nRun over: %d catches this run, %d lifetime, final score %d in the %s.\n",
		len(session.Player.Inventory), total, score, session.Area())

	if runs, err := ledger.RecentRuns(5); err == nil {
		for _, r := range runs {
			fmt.Printf("  %s  seed=%d  %s  score=%d\n", r.EndedAt, r.Seed, r.Difficulty, r.Score)
		}
	}
}

// demoAction stands in for a player: wander while exploring, always
// take the cast when fish are near, and reel whenever tension builds.
func demoAction(s *game.Session, rng *rand.Rand) game.Action {
	switch s.Mode.(type) {
	case game.Exploring:
		if s.Player.Hunger < 30 && len(s.Player.Inventory) > 0 {
			return game.Action{Kind: game.ActionEat}
		}
		if s.Player.Hunger < 30 && s.Player.CannedFood > 0 {
			return game.Action{Kind: game.ActionSnack}
		}
		if s.Player.Line > 0 && len(s.Fishes) > 0 && rng.Intn(4) == 0 {
			return game.Action{Kind: game.ActionCast}
		}
		return game.Move(rng.Intn(3)-1, rng.Intn(3)-1)
	case game.Aiming:
		if rng.Intn(3) == 0 {
			return game.Action{Kind: game.ActionConfirmCast}
		}
		return game.Move(rng.Intn(3)-1, rng.Intn(3)-1)
	case game.Fishing:
		if s.Meter != nil && s.Meter.Tension > s.Meter.MaxTension/2 {
			return game.Action{Kind: game.ActionReel}
		}
		return game.Action{Kind: game.ActionNone}
	default:
		return game.Action{Kind: game.ActionNone}
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("ignoring bad integer", "key", key, "value", v)
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		slog.Warn("ignoring bad integer", "key", key, "value", v)
	}
	return fallback
}
