package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/games/dash/sim"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimFrameMin time.Duration
	flagSimFrameMax time.Duration
	flagSimLead     float64
	flagSimRealtime bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <course>",
	Short: "Run a headless autopilot and print the result",
	Long: `Play a course without a screen. An autopilot jumps over whatever is
ahead and restarts after every game over. Frames arrive with random deltas
between --frame-min and --frame-max, so the same seed gives the same runs
regardless of how the frames are sliced.

Examples:
  dash sim dash --seed 7
  dash sim dash-blocks --duration 5m --lead 0.2
  dash sim dash --realtime --duration 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Simulated play time")
	simCmd.Flags().DurationVar(&flagSimFrameMin, "frame-min", 4*time.Millisecond, "Shortest frame delta")
	simCmd.Flags().DurationVar(&flagSimFrameMax, "frame-max", 30*time.Millisecond, "Longest frame delta")
	simCmd.Flags().Float64Var(&flagSimLead, "lead", 0.12, "Autopilot look-ahead in seconds")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames with the wall clock at --fps")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the scores database")
}

// runResult is one finished run seen by the headless renderer.
type runResult struct {
	score   int
	cleared int
	ticks   uint64
	cause   sim.EndCause
	seed    int64
}

func runSim(cmd *cobra.Command, args []string) error {
	v, err := variantFor(args[0])
	if err != nil {
		return err
	}
	cfg, err := dash.Configure(v)
	if err != nil {
		return err
	}
	if flagSimFrameMin <= 0 || flagSimFrameMax < flagSimFrameMin {
		return fmt.Errorf("invalid frame range %v..%v", flagSimFrameMin, flagSimFrameMax)
	}

	logger := newLogger(os.Stderr)
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	opts := []sim.Option{sim.WithLogger(logger.With("game", v.ID))}
	if flagSimSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
			opts = append(opts, sim.WithBestStore(storage.NewBestScore(store, v.ID)))
		}
	}

	session, err := sim.NewSession(cfg, seed, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var frames sim.FrameSource
	if flagSimRealtime {
		fps := max(flagFPS, 1)
		ticker := sim.NewTickerSource(time.Second / time.Duration(fps))
		defer ticker.Stop()
		frames = ticker

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagSimDuration)
		defer cancel()
	} else {
		rng := rand.New(rand.NewSource(seed))
		deltas := sim.JitterDeltas(rng, flagSimDuration, flagSimFrameMin, flagSimFrameMax)
		frames = sim.NewScriptedSource(time.Unix(0, 0), deltas)
	}

	var results []runResult
	recorded := false
	render := sim.RenderFunc(func(snap sim.Snapshot) error {
		if snap.Phase != sim.GameOver {
			recorded = false
			return nil
		}
		if recorded {
			return nil
		}
		recorded = true
		r := runResult{
			score:   snap.Score,
			cleared: snap.Cleared,
			ticks:   snap.Tick,
			cause:   snap.Cause,
			seed:    session.Seed(),
		}
		results = append(results, r)
		logger.Debug("run over", "run", len(results), "score", r.score, "cause", r.cause)

		if store != nil && r.score > 0 {
			if _, err := store.SaveRun(storage.RunRecord{
				GameID:  v.ID,
				Score:   r.score,
				Cleared: r.cleared,
				Ticks:   r.ticks,
				Cause:   r.cause.String(),
				Seed:    r.seed,
			}); err != nil {
				logger.Warn("could not save run", "err", err)
			}
		}
		return nil
	})

	loop := sim.NewLoop(session, frames, sim.NewAutopilot(session, flagSimLead), render)
	// A realtime run ends on its deadline.
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	printSimReport(v, seed, loop.Frames(), session, results)
	return nil
}

func printSimReport(v dash.Variant, seed int64, frames int, session *sim.Session, results []runResult) {
	rate := session.Config().Clock.Rate
	fmt.Printf("%s  seed %d  %d frames\n", v.Title, seed, frames)
	fmt.Println()

	if len(results) > 0 {
		fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "Run", "Score", "Cleared", "Time", "Ended")
		for i, r := range results {
			d := time.Duration(r.ticks) * time.Second / time.Duration(rate)
			fmt.Printf("  %-4d  %-8d  %-7d  %-8s  %s\n", i+1, r.score, r.cleared, d.Round(10*time.Millisecond), r.cause)
		}
		fmt.Println()
	}

	live := session.Snapshot()
	if live.Phase != sim.GameOver {
		fmt.Printf("Run in progress: score %d, cleared %d\n", live.Score, live.Cleared)
	}
	fmt.Printf("Best: %d\n", session.Best())
}
