package utils

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.TargetCRS != "EPSG:4326" || config.Compression != "PACKBITS" ||
		config.NoData != -1 || config.Concurrency != 1 {
		t.Errorf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "grstools.yaml")
	conf := []byte("target_crs: EPSG:3577\nconcurrency: 4\n")
	if err := ioutil.WriteFile(confFile, conf, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(confFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.TargetCRS != "EPSG:3577" || config.Concurrency != 4 {
		t.Errorf("overrides not applied: %+v", config)
	}
	if config.Compression != "PACKBITS" || config.NoData != -1 {
		t.Errorf("defaults not preserved: %+v", config)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	badYaml := filepath.Join(dir, "bad.yaml")
	ioutil.WriteFile(badYaml, []byte("target_crs: [unterminated"), 0644)

	badConc := filepath.Join(dir, "conc.yaml")
	ioutil.WriteFile(badConc, []byte("concurrency: -1\n"), 0644)

	noCRS := filepath.Join(dir, "crs.yaml")
	ioutil.WriteFile(noCRS, []byte("target_crs: \"\"\n"), 0644)

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), badYaml, badConc, noCRS} {
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for %s", path)
		}
	}
}
