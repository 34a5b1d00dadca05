package systems

import (
	"github.com/spaghettifunk/camrig/engine/assets"
	"github.com/spaghettifunk/camrig/engine/math"
)

type SystemManagerConfig struct {
	MaxCameraCount uint16
	Handedness     math.Handedness
	// Directory of camera rig files to load and watch. Empty disables rigs.
	RigDirectory string
	// Background workers for frame encoding. Zero uses DefaultJobWorkerCount.
	JobWorkerCount int
}

const DefaultJobWorkerCount int = 2

type SystemManager struct {
	cameraSystem *CameraSystem
	rigManager   *assets.RigManager
	jobSystem    *JobSystem
}

func NewSystemManager(config *SystemManagerConfig) (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: config.MaxCameraCount,
		Handedness:     config.Handedness,
	})
	if err != nil {
		return nil, err
	}
	workers := config.JobWorkerCount
	if workers <= 0 {
		workers = DefaultJobWorkerCount
	}
	js, err := NewJobSystem(workers, workers*4)
	if err != nil {
		return nil, err
	}
	sm := &SystemManager{cameraSystem: cs, jobSystem: js}

	if config.RigDirectory == "" {
		return sm, nil
	}
	rm, err := assets.NewRigManager()
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	rm.OnLoad(cs.OnRigLoaded)
	if err := rm.Initialize(config.RigDirectory); err != nil {
		rm.Shutdown()
		js.Shutdown()
		return nil, err
	}
	sm.rigManager = rm
	return sm, nil
}

func (sm *SystemManager) CameraSystem() *CameraSystem {
	return sm.cameraSystem
}

// RigManager returns the rig watcher, or nil when no rig directory was configured.
func (sm *SystemManager) RigManager() *assets.RigManager {
	return sm.rigManager
}

func (sm *SystemManager) JobSystem() *JobSystem {
	return sm.jobSystem
}

// Shutdown stops the rig watcher and waits for queued jobs before clearing cameras.
func (sm *SystemManager) Shutdown() error {
	if sm.rigManager != nil {
		sm.rigManager.Shutdown()
	}
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	return sm.cameraSystem.Shutdown()
}
