package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kevin-cantwell/textbitmap"
	"gopkg.in/yaml.v2"
)

// config is the optional YAML file given with --config. Flags that are set on
// the command line win over it.
type config struct {
	// Threshold is an integer or "auto".
	Threshold    string                 `yaml:"threshold"`
	Invert       bool                   `yaml:"invert"`
	Dither       bool                   `yaml:"dither"`
	Dir          string                 `yaml:"dir"`
	FinalNewline bool                   `yaml:"final_newline"`
	Adjust       textbitmap.Adjustments `yaml:"adjust"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %v", path, err)
	}
	if cfg.Threshold != "" {
		if _, _, err := parseThreshold(cfg.Threshold); err != nil {
			return cfg, fmt.Errorf("%s: %v", path, err)
		}
	}
	return cfg, nil
}

// parseThreshold accepts an integer or "auto", which selects Otsu's method.
func parseThreshold(s string) (threshold int, auto bool, err error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return 0, true, nil
	}
	threshold, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("threshold must be an integer or \"auto\", got %q", s)
	}
	return threshold, false, nil
}

// parseFit parses "COLS,ROWS". Either side may be empty or 0 to leave it unbounded.
func parseFit(s string) (cols, rows uint, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fit option must be comma separated")
	}
	var v [2]uint
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 0)
		if err != nil {
			return 0, 0, fmt.Errorf("fit option %q: %v", s, err)
		}
		v[i] = uint(n)
	}
	return v[0], v[1], nil
}
