package assets

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Loader interface {
	Load(path string) (*SceneDescription, error)
}

type TomlLoader struct{}

func (TomlLoader) Load(path string) (*SceneDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	desc := &SceneDescription{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(desc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return desc, nil
}

type YamlLoader struct{}

func (YamlLoader) Load(path string) (*SceneDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	desc := &SceneDescription{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(desc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return desc, nil
}
