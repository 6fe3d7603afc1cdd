package main

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
)

// Output formats.
const (
	FormatDump     = "dump"
	FormatElements = "elements"
)

// ErrBadConfig is wrapped by every configuration failure.
var ErrBadConfig = errors.New("hedgegraph: bad config")

// Config is the TOML shape of a run; command-line flags override it.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Graph  GraphConfig  `toml:"graph"`
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// InputConfig selects the mesh source: a mesh file, or a named solid.
type InputConfig struct {
	Path  string `toml:"path"`
	Solid string `toml:"solid"`
}

// GraphConfig maps onto core graph options.
type GraphConfig struct {
	PartialFaces bool `toml:"partial_faces"`
	RingGuard    bool `toml:"ring_guard"`
}

// CheckConfig controls the invariant pass.
type CheckConfig struct {
	Enabled bool `toml:"enabled"`
}

// OutputConfig controls the JSON export. An empty path means stdout.
type OutputConfig struct {
	Path    string `toml:"path"`
	Format  string `toml:"format"`
	Compact bool   `toml:"compact"`
}

func defaultConfig() Config {
	return Config{
		Check:  CheckConfig{Enabled: true},
		Output: OutputConfig{Format: FormatDump},
	}
}

// loadConfig reads a TOML file over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(ErrBadConfig, "%s: %v", path, err)
	}

	return cfg, nil
}

// validate checks cross-field rules.
func (c Config) validate() error {
	switch {
	case c.Input.Path == "" && c.Input.Solid == "":
		return errors.Wrap(ErrBadConfig, "no input: give a mesh file or -solid")
	case c.Input.Path != "" && c.Input.Solid != "":
		return errors.Wrap(ErrBadConfig, "mesh file and -solid are exclusive")
	}
	if c.Input.Solid != "" {
		if _, err := builder.ParsePlatonicName(c.Input.Solid); err != nil {
			return errors.Wrap(ErrBadConfig, err.Error())
		}
	}
	switch c.Output.Format {
	case FormatDump, FormatElements:
	default:
		return errors.Wrapf(ErrBadConfig, "unknown format %q", c.Output.Format)
	}

	return nil
}

// graphOptions translates the [graph] table.
func (c Config) graphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.Graph.PartialFaces {
		opts = append(opts, core.WithPartialFaces())
	}
	if c.Graph.RingGuard {
		opts = append(opts, core.WithRingGuard())
	}

	return opts
}
