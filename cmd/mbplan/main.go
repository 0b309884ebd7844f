package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/config"
	"github.com/maxtom/ompl/internal/env"
	"github.com/maxtom/ompl/internal/planner"
	"github.com/maxtom/ompl/internal/rigid"
	"github.com/maxtom/ompl/internal/space"
	"github.com/maxtom/ompl/internal/tui"
	"github.com/maxtom/ompl/internal/viz"
)

var (
	configFile string
	seed       int64
	goalBody   int
	goalPos    []float64
	serveAddr  string
	timeout    time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mbplan",
		Short: "multi-rigid-body motion planning over a live simulator",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "plan a path from the current simulator state",
		RunE:  runPlan,
	}
	planCmd.Flags().IntVar(&goalBody, "goal-body", 0, "body to move")
	planCmd.Flags().Float64SliceVar(&goalPos, "goal-pos", []float64{1, 0, 0}, "goal position x,y,z")
	planCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "planning time budget")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "plan with a live progress view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&goalBody, "goal-body", 0, "body to move")
	liveCmd.Flags().Float64SliceVar(&goalPos, "goal-pos", []float64{1, 0, 0}, "goal position x,y,z")
	liveCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "planning time budget")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "expose an in-memory environment over websocket",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:7030", "listen address")

	rootCmd.AddCommand(planCmd, liveCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// demoScene builds the in-memory fallback environment: bodies spread
// along the x axis inside a 10-unit box.
func demoScene(bodies int) *env.Memory {
	bounds := space.Bounds{
		Low:  r3.Vec{X: -5, Y: -5, Z: -5},
		High: r3.Vec{X: 5, Y: 5, Z: 5},
	}
	bs := make([]env.Body, bodies)
	for i := range bs {
		bs[i].Position = r3.Vec{X: float64(i)}
	}
	return env.NewMemory(bounds, bs...)
}

func openEnvironment(ctx context.Context, cfg *config.Config, log *zap.Logger) (env.Environment, func(), error) {
	if cfg.Environment.Address == "" {
		return demoScene(cfg.Environment.Bodies), func() {}, nil
	}
	client, err := env.Dial(ctx, cfg.Environment.Address, log)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

func buildSpace(cfg *config.Config, e env.Environment) (*rigid.Space, error) {
	sp, err := rigid.New(e, cfg.SpaceWeights())
	if err != nil {
		return nil, err
	}
	if err := sp.SetDefaultBounds(); err != nil {
		return nil, err
	}
	if b := cfg.Bounds.Volume; b != nil {
		if err := sp.SetVolumeBounds(b.Bounds()); err != nil {
			return nil, err
		}
	}
	if b := cfg.Bounds.LinearVelocity; b != nil {
		if err := sp.SetLinearVelocityBounds(b.Bounds()); err != nil {
			return nil, err
		}
	}
	if b := cfg.Bounds.AngularVelocity; b != nil {
		if err := sp.SetAngularVelocityBounds(b.Bounds()); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

// buildProblem reads the start state from the simulator and derives
// the goal: the start with one body moved to the requested position.
func buildProblem(sp *rigid.Space) (start, goal *rigid.State, err error) {
	if len(goalPos) != 3 {
		return nil, nil, fmt.Errorf("goal-pos needs 3 components, got %d", len(goalPos))
	}
	if goalBody < 0 || goalBody >= sp.NumBodies() {
		return nil, nil, fmt.Errorf("goal-body %d out of range for %d bodies", goalBody, sp.NumBodies())
	}
	start = sp.Alloc()
	if err := sp.ReadState(start); err != nil {
		sp.Free(start)
		return nil, nil, err
	}
	goal = sp.Alloc()
	sp.Copy(goal, start)
	*goal.BodyPosition(goalBody) = r3.Vec{X: goalPos[0], Y: goalPos[1], Z: goalPos[2]}
	return start, goal, nil
}

func newRRT(cfg *config.Config, sp *rigid.Space) *planner.RRT {
	rng := rand.New(rand.NewSource(seed))
	return &planner.RRT{
		Space:   sp,
		Sampler: rigid.NewSampler(sp, rng),
		Valid:   func(s *rigid.State) bool { return sp.SatisfiesBoundsExceptRotation(s) },
		Opts:    cfg.PlannerOptions(),
		Rng:     rng,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	e, closeEnv, err := openEnvironment(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeEnv()

	sp, err := buildSpace(cfg, e)
	if err != nil {
		return err
	}
	start, goal, err := buildProblem(sp)
	if err != nil {
		return err
	}

	log.Info("planning",
		zap.Int("bodies", sp.NumBodies()),
		zap.Int64("seed", seed))

	path, err := newRRT(cfg, sp).Solve(ctx, start, goal)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(path))
	fmt.Println(viz.PositionPlot(path, goalBody))
	fmt.Println(viz.DistancePlot(path, func(a, b int) float64 {
		return sp.Distance(path.States[a], path.States[b])
	}))

	// Push the final waypoint back so the simulator session reflects
	// the planned result.
	if err := sp.WriteState(path.States[len(path.States)-1]); err != nil {
		return err
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	e, closeEnv, err := openEnvironment(ctx, cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer closeEnv()

	sp, err := buildSpace(cfg, e)
	if err != nil {
		return err
	}
	start, goal, err := buildProblem(sp)
	if err != nil {
		return err
	}

	updates := make(chan tea.Msg, 64)
	rrt := newRRT(cfg, sp)
	rrt.OnProgress = func(pr planner.Progress) {
		select {
		case updates <- tui.ProgressMsg(pr):
		default:
		}
	}
	go func() {
		path, err := rrt.Solve(ctx, start, goal)
		updates <- tui.DoneMsg{Path: path, Err: err}
	}()

	_, err = tea.NewProgram(tui.NewModel(updates)).Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	bodies := cfg.Environment.Bodies
	if bodies < 1 {
		bodies = config.DefaultBodies
	}
	mem := demoScene(bodies)
	mux := http.NewServeMux()
	mux.Handle("/env", env.NewHandler(mem, log))

	log.Info("serving environment",
		zap.String("addr", serveAddr),
		zap.Int("bodies", mem.RigidBodyCount()))
	return http.ListenAndServe(serveAddr, mux)
}
