package meta

import (
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the search settings. Zero budgets disable the corresponding
// limit, but at least one of them must be set.
type Config struct {
	Goroutines int           `yaml:"goroutines"`
	Duration   time.Duration `yaml:"duration"`
	Episodes   int           `yaml:"episodes"`
	Seed       uint64        `yaml:"seed"`
	DotDepth   int           `yaml:"dot_depth"`
	Experiment Experiment    `yaml:"experiment"`
}

// Experiment holds the settings of the parallelization experiment. Every
// agent gets the same search budget. A positive temperature makes agents
// sample their moves from the playout distribution instead of playing the
// best one.
type Experiment struct {
	Games       int           `yaml:"games"` // Per match up
	Duration    time.Duration `yaml:"duration"`
	Episodes    int           `yaml:"episodes"`
	Temperature float64       `yaml:"temperature"`
	Goroutines  []int         `yaml:"goroutines"`
	OutDir      string        `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Goroutines: GO_ROUTINES,
		Duration:   DURATION,
		Episodes:   EPISODES,
		Seed:       SEED,
		DotDepth:   DOT_DEPTH,
		Experiment: Experiment{
			Games:      10,
			Duration:   10 * time.Millisecond,
			Goroutines: []int{2, 4, 8, 16},
			OutDir:     "experiments",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var errs error
	if c.Goroutines < 0 {
		errs = multierror.Append(errs, errors.Errorf("goroutines must not be negative, got %d", c.Goroutines))
	}
	if c.Duration < 0 {
		errs = multierror.Append(errs, errors.Errorf("duration must not be negative, got %v", c.Duration))
	}
	if c.Episodes < 0 {
		errs = multierror.Append(errs, errors.Errorf("episodes must not be negative, got %d", c.Episodes))
	}
	if c.Duration == 0 && c.Episodes == 0 {
		errs = multierror.Append(errs, errors.New("duration or episodes must be set"))
	}
	if c.DotDepth < 0 {
		errs = multierror.Append(errs, errors.Errorf("dot_depth must not be negative, got %d", c.DotDepth))
	}
	if c.Experiment.Duration < 0 {
		errs = multierror.Append(errs, errors.Errorf("experiment duration must not be negative, got %v", c.Experiment.Duration))
	}
	if c.Experiment.Episodes < 0 {
		errs = multierror.Append(errs, errors.Errorf("experiment episodes must not be negative, got %d", c.Experiment.Episodes))
	}
	if c.Experiment.Duration <= 0 && c.Experiment.Episodes <= 0 {
		errs = multierror.Append(errs, errors.New("experiment duration or episodes must be set"))
	}
	if c.Experiment.Temperature < 0 {
		errs = multierror.Append(errs, errors.Errorf("experiment temperature must not be negative, got %v", c.Experiment.Temperature))
	}
	if c.Experiment.Games < 0 {
		errs = multierror.Append(errs, errors.Errorf("experiment games must not be negative, got %d", c.Experiment.Games))
	}
	for _, g := range c.Experiment.Goroutines {
		if g <= 0 {
			errs = multierror.Append(errs, errors.Errorf("experiment goroutines must be positive, got %d", g))
		}
	}
	return errs
}
