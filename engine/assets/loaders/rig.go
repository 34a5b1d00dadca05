package loaders

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

type TOMLRigLoader struct{}

func (l *TOMLRigLoader) Load(path string) (*metadata.CameraRig, error) {
	return load(path, l.Decode)
}

func (l *TOMLRigLoader) Decode(data []byte) (*metadata.CameraRig, error) {
	rig := &metadata.CameraRig{}
	if err := toml.Unmarshal(data, rig); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrRigInvalid, err)
	}
	return validated(rig)
}

type YAMLRigLoader struct{}

func (l *YAMLRigLoader) Load(path string) (*metadata.CameraRig, error) {
	return load(path, l.Decode)
}

func (l *YAMLRigLoader) Decode(data []byte) (*metadata.CameraRig, error) {
	rig := &metadata.CameraRig{}
	if err := yaml.Unmarshal(data, rig); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrRigInvalid, err)
	}
	return validated(rig)
}

func load(path string, decode func([]byte) (*metadata.CameraRig, error)) (*metadata.CameraRig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rig, err := decode(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to load rig '%s': %w", path, err)
	}
	return rig, nil
}

func validated(rig *metadata.CameraRig) (*metadata.CameraRig, error) {
	if err := rig.Validate(); err != nil {
		return nil, err
	}
	return rig, nil
}
