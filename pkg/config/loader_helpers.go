package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config. Keys absent
// from the file keep their current values.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeConfigLoad, "failed to read config").WithContext("path", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeConfigParse, "parsing YAML").
			WithContext("path", path).
			WithRemediation("check the file against the sections in facet.example.yaml")
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeInternal, "encoding config")
	}
	if err := enc.Close(); err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeInternal, "encoding config")
	}
	return buf.Bytes(), nil
}
