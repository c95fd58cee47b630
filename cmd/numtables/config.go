package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/fixpnt"
	"github.com/Lemurian-Labs/lemurian-universal/lns"
	"github.com/Lemurian-Labs/lemurian-universal/mdlns"
	"github.com/Lemurian-Labs/lemurian-universal/posit"
)

// maxTableBits is the widest format a table is printed for.
const maxTableBits = 16

// Shape names a format and its parameters.
type Shape struct {
	Format   string `yaml:"format"`
	NBits    int    `yaml:"nbits"`
	ES       int    `yaml:"es"`
	RBits    int    `yaml:"rbits"`
	BBits    int    `yaml:"bbits"`
	Saturate bool   `yaml:"saturate"`
}

// Config is the contents of a batch file.
//
//	format: markdown
//	shapes:
//	  - {format: posit, nbits: 5, es: 1}
//	  - {format: fixpnt, nbits: 6, rbits: 2, saturate: true}
type Config struct {
	Format string  `yaml:"format"`
	Shapes []Shape `yaml:"shapes"`
}

// LoadConfig reads a batch file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(c.Shapes) == 0 {
		return Config{}, fmt.Errorf("%s: no shapes", path)
	}
	return c, nil
}

// Codec returns the codec of s.
func (s Shape) Codec() (universal.Codec, error) {
	if s.NBits > maxTableBits {
		return nil, fmt.Errorf("%s: %d bits is too wide for a table, at most %d", s.Format, s.NBits, maxTableBits)
	}
	switch s.Format {
	case "posit":
		p := posit.Params{NBits: s.NBits, ES: s.ES}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return posit.NewCodec(p), nil
	case "lns":
		p := lns.Params{NBits: s.NBits, RBits: s.RBits}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return lns.NewCodec(p), nil
	case "mdlns":
		p := mdlns.Params{NBits: s.NBits, BBits: s.BBits}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return mdlns.NewCodec(p), nil
	case "fixpnt":
		p := fixpnt.Params{
			NBits: s.NBits,
			RBits: s.RBits,
			Arith: lo.Ternary(s.Saturate, fixpnt.Saturate, fixpnt.Modulo),
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return fixpnt.NewCodec(p), nil
	}
	return nil, fmt.Errorf("unknown format %q", s.Format)
}

// Table returns the encoding table of s.
func (s Shape) Table() (table, error) {
	c, err := s.Codec()
	if err != nil {
		return table{}, err
	}
	return newTable(c), nil
}
