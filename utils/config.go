package utils

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config carries the tunables of the GRS batch tools. Every field has
// a working default so the tools run without a config file.
type Config struct {
	TargetCRS   string  `yaml:"target_crs"`
	Compression string  `yaml:"compression"`
	NoData      float64 `yaml:"no_data"`
	Concurrency int     `yaml:"concurrency"`
}

func DefaultConfig() *Config {
	return &Config{
		TargetCRS:   "EPSG:4326",
		Compression: "PACKBITS",
		NoData:      -1,
		Concurrency: 1,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	cfgFile, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(cfgFile, config); err != nil {
		return nil, fmt.Errorf("error while parsing config file %s: %v", path, err)
	}

	if config.Concurrency < 1 {
		return nil, fmt.Errorf("invalid concurrency %d in config file %s", config.Concurrency, path)
	}
	if config.TargetCRS == "" {
		return nil, fmt.Errorf("empty target_crs in config file %s", path)
	}

	return config, nil
}
