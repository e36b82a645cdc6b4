package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/chroma/color"
)

// defaultConfigPath is probed when --config is not given; a missing file
// is not an error in that case.
const defaultConfigPath = "chroma.toml"

// errUnknownAlgorithm rejects algorithm names outside exact|greedy|bounded.
var errUnknownAlgorithm = errors.New("unknown algorithm name")

// config mirrors the optional chroma.toml file:
//
//	[solve]
//	algorithm   = "exact"   # exact | greedy | bounded
//	max_colors  = 0         # color budget, bounded only
//	seed_greedy = true      # warm-start the exact search
type config struct {
	Solve solveConfig `toml:"solve"`
}

type solveConfig struct {
	Algorithm  string `toml:"algorithm"`
	MaxColors  int    `toml:"max_colors"`
	SeedGreedy bool   `toml:"seed_greedy"`
}

// defaultConfig matches color.DefaultOptions().
func defaultConfig() config {
	return config{
		Solve: solveConfig{
			Algorithm:  color.Exact.String(),
			MaxColors:  0,
			SeedGreedy: true,
		},
	}
}

// loadConfig reads path, or probes defaultConfigPath when path is empty.
// Only an explicitly requested file is required to exist.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// parseAlgorithm maps a CLI/config name onto the solver enum.
func parseAlgorithm(name string) (color.Algorithm, error) {
	for _, a := range []color.Algorithm{color.Exact, color.GreedyOnly, color.ExactBounded} {
		if name == a.String() {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, errUnknownAlgorithm)
}

// options translates the config section into solver options; flags may
// still override the result afterwards.
func (c solveConfig) options() (color.Options, error) {
	algo, err := parseAlgorithm(c.Algorithm)
	if err != nil {
		return color.Options{}, err
	}

	o := color.DefaultOptions()
	o.Algo = algo
	o.SeedGreedy = c.SeedGreedy
	if algo == color.ExactBounded {
		o.MaxColors = c.MaxColors
	}

	return o, nil
}
