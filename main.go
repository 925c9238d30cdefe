package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/exploding-dots/internal/config"
	"github.com/iburimskiy/exploding-dots/internal/controls"
	"github.com/iburimskiy/exploding-dots/internal/dots"
	"github.com/iburimskiy/exploding-dots/internal/game"
	"github.com/iburimskiy/exploding-dots/internal/sound"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	mute       bool
	base       int
	places     int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "explodingdots",
		Short: "Exploding Dots place-value machine",
		Long: `A place-value toy after James Tanton's Exploding Dots.

Click a cell to add a dot; when a cell holds as many dots as the machine's
base they explode into one dot in the cell to the left. Right click adds an
antidot, middle click unexplodes a dot into the cell to the right, and
clicking the "1 <- b" label changes the base.

Run without arguments to open the window.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&a.mute, "mute", false, "disable sound")
	flags.IntVarP(&a.base, "base", "b", 0, "machine base (overrides config)")
	flags.IntVarP(&a.places, "places", "n", 0, "number of places (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Open the dot machine window",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.play()
			},
		},
		newShowCmd(a),
		newExplodeCmd(a),
		newUnexplodeCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Base = a.base
	}
	if flags.Changed("places") {
		cfg.Places = a.places
	}
	if a.mute {
		cfg.Sound = false
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) newBoard() (*dots.Board, error) {
	return dots.New(a.cfg.Places, a.cfg.Base, a.limits())
}

func (a *app) limits() dots.Limits {
	return dots.Limits{Min: a.cfg.MinBase, Max: a.cfg.MaxBase}
}

func (a *app) play() error {
	board, err := a.newBoard()
	if err != nil {
		return err
	}
	ctrl := controls.New(board, a.cfg.AutoExplode, a.logger)

	var player sound.Player = &sound.Nop{}
	if a.cfg.Sound {
		d := time.Duration(config.PopDuration * float64(time.Second))
		sp, err := sound.NewSpeaker(config.PopFrequency, d, a.cfg.Volume, a.logger)
		if err != nil {
			a.logger.Warn("sound disabled", zap.Error(err))
		} else {
			player = sp
		}
	}

	a.logger.Info("starting",
		zap.Int("places", board.Len()),
		zap.String("machine", dots.MachineName(board.Base())))

	g := game.New(a.cfg, ctrl, player, game.ZenityPrompter{}, a.logger)
	ebiten.SetWindowSize(a.cfg.WindowWidth, a.cfg.WindowHeight)
	ebiten.SetWindowTitle("Exploding Dots Demo")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
