package location

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embeddedSeed []byte

// ParseSeed decodes a YAML document of the form
// district → block → gram panchayat → village → shgs → SHG and validates it.
func ParseSeed(r io.Reader) (*Tree, error) {
	var raw Districts
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding location seed: %w", err)
	}
	return NewTree(raw)
}

// LoadSeedFile reads a YAML seed from disk. An empty path loads the
// embedded Tripura seed.
func LoadSeedFile(path string) (*Tree, error) {
	if path == "" {
		return EmbeddedSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening location seed: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// EmbeddedSeed returns the tree compiled into the binary.
func EmbeddedSeed() (*Tree, error) {
	return ParseSeed(bytes.NewReader(embeddedSeed))
}
