package skeleton

import (
	"io"

	"github.com/osuushi/skeleton/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options tune a run. The zero value is ready to use.
type Options struct {
	// Open paths only. Bounds how far the end caps reach around the path
	// ends: 0 keeps the sideways half of each cap and 1 keeps the part
	// straight back. Nil keeps the whole cap.
	CapWeight *float64 `yaml:"capWeight,omitempty"`
	// Log the boundary of each wavefront after every batch of events.
	Debug bool `yaml:"debug,omitempty"`
	// Save a drawing of the result to this PNG file.
	DebugDraw string `yaml:"debugDraw,omitempty"`
	// Print a drawing of the result to an iTerm terminal.
	DebugTerminal bool `yaml:"debugTerminal,omitempty"`
	// Check the topology of every wavefront after every batch of events.
	Validate bool `yaml:"validate,omitempty"`
}

// ParseOptions reads Options from YAML.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Wrap(err, "parsing options")
	}
	return opts, opts.validate()
}

func LoadOptions(r io.Reader) (Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, errors.Wrap(err, "reading options")
	}
	return ParseOptions(data)
}

func (o Options) validate() error {
	if o.CapWeight != nil && (*o.CapWeight < 0 || *o.CapWeight > 1) {
		return errors.Wrapf(ErrInvalidCapWeight, "got %v", *o.CapWeight)
	}
	return nil
}

func (o Options) config() internal.Config {
	return internal.Config{
		CapWeight:     o.CapWeight,
		Validate:      o.Validate,
		Debug:         o.Debug,
		DebugDraw:     o.DebugDraw,
		DebugTerminal: o.DebugTerminal,
	}
}
