package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"portsniffer/port"
	"portsniffer/scanner"
)

type config struct {
	Threads   int           `yaml:"threads"`
	Timeout   time.Duration `yaml:"timeout"`
	Quiet     bool          `yaml:"quiet"`
	Verbose   bool          `yaml:"verbose"`
	FileLimit uint64        `yaml:"file_limit"`
}

func defaultConfig() config {
	return config{
		Threads:   port.DefaultWorkers,
		Timeout:   scanner.DefaultTimeout,
		FileLimit: 4096,
	}
}

// loadConfig overlays the YAML file at fn on top of cf.
func loadConfig(fn string, cf *config) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cf); err != nil {
		return fmt.Errorf("parse %s: %w", fn, err)
	}
	return nil
}
