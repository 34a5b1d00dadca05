package assets

import "github.com/spaghettifunk/camrig/engine/renderer/metadata"

type Loader interface {
	Load(path string) (*metadata.CameraRig, error)
	// Decode parses rig data without touching the filesystem.
	Decode(data []byte) (*metadata.CameraRig, error)
}
