package systems

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

type CameraSystem struct {
	mu     sync.RWMutex
	Config *CameraSystemConfig
	Lookup map[string]*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.LookAtCamera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/** @brief The maximum number of named cameras the system manages. */
	MaxCameraCount uint16
	/** @brief Handedness of cameras created on Acquire. */
	Handedness math.Handedness
}

// NewCameraSystem creates the registry and its default camera.
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &CameraSystem{
		Config:        config,
		Lookup:        make(map[string]*components.CameraLookup, config.MaxCameraCount),
		DefaultCamera: components.NewLookAtCamera(components.DEFAULT_CAMERA_NAME, config.Handedness),
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.Lookup = make(map[string]*components.CameraLookup)
	return nil
}

/**
 * @brief Acquires a camera by name. If one is not found, a new look-at
 * camera is created. The reference counter is incremented.
 */
func (cs *CameraSystem) Acquire(name string) (components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	lookup, ok := cs.Lookup[name]
	if !ok {
		created, err := cs.insert(name, components.NewLookAtCamera(name, cs.Config.Handedness))
		if err != nil {
			return nil, err
		}
		return created.Camera, nil
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

/**
 * @brief Releases a camera with the given name. When the reference
 * counter reaches 0 the camera is dropped and its slot is reusable.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	lookup, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return
	}
	if lookup.ReferenceCount > 0 {
		lookup.ReferenceCount--
	}
	if lookup.ReferenceCount < 1 {
		delete(cs.Lookup, name)
	}
}

/**
 * @brief Adds a camera under name, or replaces the camera already there
 * while keeping its id and reference count. A new entry is held once by
 * the system itself.
 */
func (cs *CameraSystem) Register(name string, camera components.Camera) error {
	return cs.register(name, camera, nil)
}

// ApplyRig registers the camera a rig describes. Its projection is applied whenever it updates.
func (cs *CameraSystem) ApplyRig(rig *metadata.CameraRig) error {
	camera, err := components.CameraFromRig(rig)
	if err != nil {
		core.LogError("failed to build camera from rig: %s", err)
		return err
	}
	return cs.register(rig.Name, camera, rig)
}

// OnRigLoaded applies a rig delivered by the rig watcher.
func (cs *CameraSystem) OnRigLoaded(rig *metadata.CameraRig, path string) {
	if err := cs.ApplyRig(rig); err != nil {
		core.LogWarn("ignoring rig '%s': %s", path, err)
		return
	}
	core.LogInfo("camera '%s' updated from '%s'", rig.Name, path)
}

func (cs *CameraSystem) register(name string, camera components.Camera, rig *metadata.CameraRig) error {
	if name == components.DEFAULT_CAMERA_NAME {
		return fmt.Errorf("cannot replace the default camera")
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if lookup, ok := cs.Lookup[name]; ok {
		lookup.Camera = camera
		lookup.Rig = rig
		return nil
	}
	lookup, err := cs.insert(name, camera)
	if err != nil {
		return err
	}
	lookup.Rig = rig
	return nil
}

// insert adds a new entry. Callers hold the write lock.
func (cs *CameraSystem) insert(name string, camera components.Camera) (*components.CameraLookup, error) {
	if len(cs.Lookup) >= int(cs.Config.MaxCameraCount) {
		err := fmt.Errorf("%w: cannot add '%s', adjust camera system config to allow more than %d", core.ErrCameraLimitReached, name, cs.Config.MaxCameraCount)
		core.LogError(err.Error())
		return nil, err
	}
	core.LogDebug("Creating new camera named '%s'...", name)
	lookup := &components.CameraLookup{
		ID:             uuid.New().String(),
		ReferenceCount: 1,
		Camera:         camera,
	}
	cs.Lookup[name] = lookup
	return lookup, nil
}

// Get returns a camera without touching its reference count.
func (cs *CameraSystem) Get(name string) (components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	lookup, ok := cs.Lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", core.ErrCameraNotFound, name)
	}
	return lookup.Camera, nil
}

/**
 * @brief Writes the named camera into target. A rig camera first applies
 * its rig's projection for the target's viewport.
 */
func (cs *CameraSystem) Update(name string, target components.CameraTarget) error {
	if name == components.DEFAULT_CAMERA_NAME {
		cs.DefaultCamera.Update(target)
		return nil
	}
	cs.mu.RLock()
	lookup, ok := cs.Lookup[name]
	var camera components.Camera
	var rig *metadata.CameraRig
	if ok {
		camera, rig = lookup.Camera, lookup.Rig
	}
	cs.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: '%s'", core.ErrCameraNotFound, name)
	}

	if rig != nil {
		p, err := components.ProjectionFromRig(rig, target.Viewport())
		if err != nil {
			return err
		}
		components.ApplyProjection(target, p)
	}
	camera.Update(target)
	return nil
}

// Names returns the registered camera names, sorted. The default camera is not included.
func (cs *CameraSystem) Names() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	names := make([]string, 0, len(cs.Lookup))
	for name := range cs.Lookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReferenceCount returns how many holders the named camera has, or 0 if it is not registered.
func (cs *CameraSystem) ReferenceCount(name string) uint16 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if lookup, ok := cs.Lookup[name]; ok {
		return lookup.ReferenceCount
	}
	return 0
}

func (cs *CameraSystem) GetDefault() *components.LookAtCamera {
	return cs.DefaultCamera
}
