package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"othello/communication"
	"othello/experiments"
	"othello/meta"
	"othello/searcher"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("othello failed")
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("othello", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: othello [flags] <input> <output>")
		fmt.Fprintln(stderr, "       othello -experiment [flags]")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "YAML config file")
	goroutines := flags.Int("goroutines", meta.GO_ROUTINES, "Number of search trees, 0 for one per CPU")
	duration := flags.Duration("duration", meta.DURATION, "Search time budget")
	episodes := flags.Int("episodes", meta.EPISODES, "Episodes per tree, 0 for unbounded")
	seed := flags.Uint64("seed", meta.SEED, "Base rollout seed")
	dotPath := flags.String("dot", "", "Write the merged search tree as DOT to this file")
	verbose := flags.Bool("v", false, "Debug logging")
	experiment := flags.Bool("experiment", false, "Run the parallelization experiment instead of a search")
	games := flags.Int("games", 0, "Games per experiment match up")
	outDir := flags.String("out", "", "Experiment output directory")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	setupLogging(stderr, *verbose)

	config := meta.Default()
	if *configPath != "" {
		var err error
		if config, err = meta.Load(*configPath); err != nil {
			return err
		}
	}
	// Explicit flags override the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "goroutines":
			config.Goroutines = *goroutines
		case "duration":
			config.Duration = *duration
		case "episodes":
			config.Episodes = *episodes
		case "seed":
			config.Seed = *seed
		case "games":
			config.Experiment.Games = *games
		case "out":
			config.Experiment.OutDir = *outDir
		}
	})
	if err := config.Validate(); err != nil {
		return err
	}

	if *experiment {
		summaries, err := experiments.RunParallelizationExperiment(config.Experiment)
		for _, s := range summaries {
			log.Info().Msgf("%d goroutines: win rate %.2f over %d games, %.0f±%.0f episodes per search",
				s.Agent.Goroutines, s.WinRate, s.Games, s.MeanEpisodes, s.StdEpisodes)
		}
		return err
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return errors.Errorf("expected input and output paths, got %d arguments", flags.NArg())
	}
	return findMove(config, flags.Arg(0), flags.Arg(1), *dotPath)
}

func setupLogging(w io.Writer, verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: colorable.NewColorable(f), TimeFormat: time.TimeOnly}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// findMove reads a position from input, searches it and writes the chosen
// move to output.
func findMove(config meta.Config, input, output, dotPath string) error {
	in, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "failed to open input")
	}
	defer in.Close()

	state, err := communication.ReadState(in)
	if err != nil {
		return err
	}
	log.Debug().Msgf("player %v to move in\n%v", state.Player, state.Position)

	mcts := searcher.NewMCTS(
		config.Goroutines,
		searcher.WithDuration(config.Duration),
		searcher.WithEpisodes(config.Episodes),
		searcher.WithSeed(config.Seed),
		searcher.WithMetrics(),
	)
	result, metric := mcts.Search(state.Position, state.Player)
	log.Info().
		Int("goroutines", metric.Goroutines).
		Int("episodes", metric.Episodes).
		Dur("duration", metric.Duration).
		Msgf("found move %v", result.Move)

	if dotPath != "" {
		if err := writeDOT(result, dotPath, config.DotDepth); err != nil {
			return err
		}
	}

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	if err := communication.WriteMove(out, result.Move); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "failed to close output")
}

func writeDOT(result searcher.Result, path string, depth int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create dot file")
	}
	if err := result.WriteDOT(f, depth); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to close dot file")
}
