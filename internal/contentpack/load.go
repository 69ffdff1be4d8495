package contentpack

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// packDocument mirrors the on-disk YAML layout of a content pack.
type packDocument struct {
	Config   []Action     `yaml:"config"`
	Tools    []ToolOption `yaml:"tools"`
	Patients []Patient    `yaml:"patients"`
}

// Load reads, parses and validates the content pack at path. The
// fingerprint is a SHA-256 over the raw file bytes, so any edit to the
// pack invalidates in-flight sessions on resume.
func Load(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content pack: %w", err)
	}
	sum := sha256.Sum256(raw)

	var doc packDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing content pack: %w", err)
	}

	pack := &Pack{
		Config:      doc.Config,
		Tools:       doc.Tools,
		Patients:    doc.Patients,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
	if errs := Validate(pack); len(errs) > 0 {
		return nil, fmt.Errorf("invalid content pack: %w", errors.Join(errs...))
	}

	pack.Reindex()
	return pack, nil
}
