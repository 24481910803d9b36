package systems

import (
	"errors"
)

type SystemManagerConfig struct {
	Workers        int
	JobQueueSize   int
	MaxCameraCount uint16
}

type SystemManager struct {
	Registry     *Registry
	CameraSystem *CameraSystem
	JobSystem    *JobSystem
}

func NewSystemManager(config SystemManagerConfig) (*SystemManager, error) {
	if config.MaxCameraCount == 0 {
		config.MaxCameraCount = 16
	}
	js, err := NewJobSystem(config.Workers, config.JobQueueSize)
	if err != nil {
		return nil, err
	}
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: config.MaxCameraCount,
	})
	if err != nil {
		return nil, errors.Join(err, js.Shutdown())
	}
	return &SystemManager{
		Registry:     NewRegistry(),
		CameraSystem: cs,
		JobSystem:    js,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.CameraSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.JobSystem.Shutdown(); err != nil {
		return err
	}
	sm.Registry.Clear()
	return nil
}
