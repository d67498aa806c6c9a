// Package yaml loads layout and classifier overrides from a YAML file
// using gopkg.in/yaml.v3.
//
// A file may set any subset of keys; anything it leaves out keeps the
// compiled-in default:
//
//	layout:
//	  drop_last_chunk: true
//	  strip:
//	    - words: [NORMAN, POLICE, DEPARTMENT]
//	    - pattern: 'Page \d+ of \d+'
//	exceptions:
//	  nature_keywords: [MVA, COP, EMS, RAMPMVA]
//	  splits:
//	    - {token: HWYMotorist, location: HWY, nature: Motorist}
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"

	"github.com/fwojciec/blotter"
	"github.com/fwojciec/blotter/extract"
	"gopkg.in/yaml.v3"
)

// Config is the parser configuration after overrides are applied.
type Config struct {
	Layout     extract.Layout
	Exceptions extract.Exceptions
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout:     extract.DefaultLayout(),
		Exceptions: extract.DefaultExceptions(),
	}
}

type fileConfig struct {
	Layout     *layoutConfig     `yaml:"layout"`
	Exceptions *exceptionsConfig `yaml:"exceptions"`
}

type layoutConfig struct {
	Strip         []stripConfig `yaml:"strip"`
	DropLastChunk *bool         `yaml:"drop_last_chunk"`
}

type stripConfig struct {
	Pattern string   `yaml:"pattern"`
	Words   []string `yaml:"words"`
}

type exceptionsConfig struct {
	NatureKeywords []string      `yaml:"nature_keywords"`
	Splits         []splitConfig `yaml:"splits"`
}

type splitConfig struct {
	Token    string `yaml:"token"`
	Location string `yaml:"location"`
	Nature   string `yaml:"nature"`
}

// Load reads the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, blotter.Errorf(blotter.EINVALID, "read layout config: %v", err)
	}
	return Parse(data)
}

// Parse applies the overrides in data to the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, blotter.Errorf(blotter.EINVALID, "parse layout config: %v", err)
	}

	cfg := DefaultConfig()

	if l := fc.Layout; l != nil {
		if l.Strip != nil {
			strip, err := compileStrip(l.Strip)
			if err != nil {
				return nil, err
			}
			cfg.Layout.Strip = strip
		}
		if l.DropLastChunk != nil {
			cfg.Layout.DropLastChunk = *l.DropLastChunk
		}
	}

	if e := fc.Exceptions; e != nil {
		if e.NatureKeywords != nil {
			cfg.Exceptions.NatureKeywords = e.NatureKeywords
		}
		if e.Splits != nil {
			splits := make([]extract.Split, 0, len(e.Splits))
			for i, s := range e.Splits {
				if s.Token == "" || s.Location == "" || s.Nature == "" {
					return nil, blotter.Errorf(blotter.EINVALID, "split %d: token, location and nature are required", i)
				}
				splits = append(splits, extract.Split{Token: s.Token, Location: s.Location, Nature: s.Nature})
			}
			cfg.Exceptions.Splits = splits
		}
	}

	return cfg, nil
}

func compileStrip(entries []stripConfig) ([]*regexp.Regexp, error) {
	strip := make([]*regexp.Regexp, 0, len(entries))
	for i, s := range entries {
		switch {
		case s.Pattern != "" && len(s.Words) > 0:
			return nil, blotter.Errorf(blotter.EINVALID, "strip %d: set either pattern or words, not both", i)
		case s.Pattern != "":
			re, err := regexp.Compile(s.Pattern)
			if err != nil {
				return nil, blotter.Errorf(blotter.EINVALID, "strip %d: %v", i, err)
			}
			strip = append(strip, re)
		case len(s.Words) > 0:
			strip = append(strip, extract.WordsPattern(s.Words...))
		default:
			return nil, blotter.Errorf(blotter.EINVALID, "strip %d: pattern or words required", i)
		}
	}
	return strip, nil
}
