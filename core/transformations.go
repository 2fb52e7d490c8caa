package core

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// transformationFile is the on-disk layout of a transformation spec file.
type transformationFile struct {
	DefaultInstructions string               `yaml:"default_instructions"`
	Transformations     []TransformationSpec `yaml:"transformations"`
}

// TransformationSet holds a set of transformation specs plus the shared
// instructions prefixed to every transformation prompt.
type TransformationSet struct {
	DefaultInstructions string
	Specs               []TransformationSpec
}

// Defaults returns the specs flagged to apply by default.
func (s *TransformationSet) Defaults() []TransformationSpec {
	var defaults []TransformationSpec
	for _, spec := range s.Specs {
		if spec.ApplyDefault {
			defaults = append(defaults, spec)
		}
	}
	return defaults
}

// ByName returns the spec with the given name, or false if absent.
func (s *TransformationSet) ByName(name string) (TransformationSpec, bool) {
	for _, spec := range s.Specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return TransformationSpec{}, false
}

// ReadTransformationSet parses a YAML transformation spec document.
// Every spec is validated; a single invalid spec fails the whole read since
// specs must be immutable and well-formed before a pipeline run starts.
func ReadTransformationSet(r io.Reader) (*TransformationSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file transformationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing transformation specs: %w", err)
	}

	for i := range file.Transformations {
		if err := ValidateTransformationSpec(&file.Transformations[i]); err != nil {
			return nil, err
		}
	}

	return &TransformationSet{
		DefaultInstructions: file.DefaultInstructions,
		Specs:               file.Transformations,
	}, nil
}

// LoadTransformationSet reads a transformation spec file from disk.
func LoadTransformationSet(path string) (*TransformationSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTransformationSet(f)
}
