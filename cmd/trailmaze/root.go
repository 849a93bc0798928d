package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trailmaze/longest"
	"github.com/katalvlaran/trailmaze/maze"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	mode       string
	depth      int
	noPrune    bool
	format     string
	logLevel   string

	settings settings
	logger   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "trailmaze",
		Short:        "Longest simple trail through a grid maze",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.resolve(cmd)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.mode, "mode", "both", "traversal mode: directional, undirected or both")
	pf.IntVar(&a.depth, "parallel-depth", longest.DefaultParallelDepth, "search levels that fan out into goroutines (0 = sequential)")
	pf.BoolVar(&a.noPrune, "no-prune", false, "keep perimeter back-edges")
	pf.StringVar(&a.format, "format", "text", "output format: text or json")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newGraphCmd(a))

	return root
}

// resolve merges defaults, the config file and explicitly set flags, then
// builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	s := defaultSettings()
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.apply(&s); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		if s.modes, err = parseModes(a.mode); err != nil {
			return err
		}
	}
	if flags.Changed("parallel-depth") {
		s.parallelDepth = a.depth
	}
	if flags.Changed("no-prune") {
		s.prune = !a.noPrune
	}
	if flags.Changed("format") {
		s.format = a.format
	}
	if flags.Changed("log-level") {
		s.logLevel = a.logLevel
	}
	if s.format != "text" && s.format != "json" {
		return fmt.Errorf("unknown format %q", s.format)
	}

	level, err := zerolog.ParseLevel(s.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.settings = s
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}

// loadGrid reads the maze from the named file, or from stdin for "-" or no
// argument.
func (a *app) loadGrid(cmd *cobra.Command, args []string) (*maze.Grid, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	g, err := maze.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Info().Str("source", name).Int("rows", g.Rows).Int("cols", g.Cols).Msg("maze loaded")

	return g, nil
}
