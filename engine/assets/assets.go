package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/camrig/engine/assets/loaders"
	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

type RigInfo struct {
	Path       string
	Format     metadata.RigFormat
	LastLoaded time.Time
	Rig        *metadata.CameraRig
}

// FnOnRigLoaded is called from the watcher goroutine every time a rig file is (re)loaded.
type FnOnRigLoaded func(rig *metadata.CameraRig, path string)

/**
 * @brief Loads camera rig files from a directory tree and reloads them when
 * they change on disk. A file that fails to parse keeps its last good rig.
 */
type RigManager struct {
	rigs    map[string]RigInfo
	loaders map[metadata.RigFormat]Loader
	onLoad  FnOnRigLoaded

	mutex sync.RWMutex

	done      chan struct{}
	closeOnce sync.Once
	fsnotify  *fsnotify.Watcher
	isClosed  bool
}

func NewRigManager() (*RigManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	rm := &RigManager{
		rigs:     make(map[string]RigInfo),
		loaders:  make(map[metadata.RigFormat]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	rm.registerLoader(metadata.RIG_FORMAT_TOML, &loaders.TOMLRigLoader{})
	rm.registerLoader(metadata.RIG_FORMAT_YAML, &loaders.YAMLRigLoader{})
	return rm, nil
}

// OnLoad sets the callback run after each successful load. Set it before Initialize.
func (rm *RigManager) OnLoad(fn FnOnRigLoaded) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()
	rm.onLoad = fn
}

// Initialize loads every rig under rigsDir and starts watching it. On error
// the watcher is shut down.
func (rm *RigManager) Initialize(rigsDir string) error {
	if err := rm.addRecursive(rigsDir); err != nil {
		rm.Shutdown()
		return err
	}
	go rm.start()
	return nil
}

// Shutdown stops the watch loop and releases the watcher, whether or not
// Initialize succeeded. It is safe to call more than once.
func (rm *RigManager) Shutdown() {
	rm.closeOnce.Do(func() {
		rm.mutex.Lock()
		rm.isClosed = true
		rm.mutex.Unlock()
		close(rm.done)
		if err := rm.fsnotify.Close(); err != nil {
			core.LogWarn("failed to close rig watcher: %s", err)
		}
	})
}

// AddRecursive starts watching the named directory and all sub-directories.
func (rm *RigManager) addRecursive(name string) error {
	rm.mutex.RLock()
	closed := rm.isClosed
	rm.mutex.RUnlock()
	if closed {
		return errors.New("rig watcher already closed")
	}
	return rm.watchRecursive(name)
}

// Register loaders for each rig format
func (rm *RigManager) registerLoader(format metadata.RigFormat, loader Loader) {
	rm.loaders[format] = loader
}

// LoadRig reads a rig file with the loader for its extension.
func (rm *RigManager) LoadRig(path string) (*metadata.CameraRig, error) {
	format := metadata.DetermineRigFormat(path)
	loader, exists := rm.loaders[format]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", core.ErrRigFormat, path)
	}
	return loader.Load(path)
}

// Rig returns the most recently loaded rig with the given name.
func (rm *RigManager) Rig(name string) (*metadata.CameraRig, error) {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()

	var found *RigInfo
	for _, info := range rm.rigs {
		if info.Rig.Name != name {
			continue
		}
		if found == nil || info.LastLoaded.After(found.LastLoaded) {
			i := info
			found = &i
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no rig named '%s'", core.ErrCameraNotFound, name)
	}
	return found.Rig, nil
}

// Rigs returns every loaded rig sorted by name.
func (rm *RigManager) Rigs() []*metadata.CameraRig {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()

	rigs := make([]*metadata.CameraRig, 0, len(rm.rigs))
	for _, info := range rm.rigs {
		rigs = append(rigs, info.Rig)
	}
	sort.Slice(rigs, func(i, j int) bool { return rigs[i].Name < rigs[j].Name })
	return rigs
}

func (rm *RigManager) start() {
	for {
		select {
		case e, ok := <-rm.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := rm.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch '%s': %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				rm.handleFileEvent(e.Name)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				rm.removeRig(e.Name)
			}

		case err, ok := <-rm.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-rm.done:
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and loads the rig files it finds.
func (rm *RigManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return rm.fsnotify.Add(walkPath)
		}
		rm.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (rm *RigManager) handleFileEvent(path string) {
	if metadata.DetermineRigFormat(path) == metadata.RIG_FORMAT_NONE {
		return
	}
	rig, err := rm.LoadRig(path)
	if err != nil {
		core.LogWarn("keeping previous rig for '%s': %s", path, err)
		return
	}

	rm.mutex.Lock()
	rm.rigs[path] = RigInfo{
		Path:       path,
		Format:     metadata.DetermineRigFormat(path),
		LastLoaded: time.Now(),
		Rig:        rig,
	}
	onLoad := rm.onLoad
	rm.mutex.Unlock()

	core.LogDebug("loaded camera rig '%s' from '%s'", rig.Name, path)
	if onLoad != nil {
		onLoad(rig, path)
	}
	ctx := core.EventContext{}
	ctx.Data.C[0] = rig.Name
	ctx.Data.C[1] = path
	core.EventFire(core.EVENT_CODE_CAMERA_RIG_LOADED, rm, ctx)
}

// Remove the rig from the index if its file was deleted
func (rm *RigManager) removeRig(path string) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	delete(rm.rigs, path)
}
