package core

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a configuration file whenever it is written and
// re-applies its log settings.
type ConfigWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup

	mutex   sync.RWMutex
	current *Config

	// Reloaded fires after every successful reload.
	Reloaded Signal
}

func NewConfigWatcher(path string, initial *Config) (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file, so the directory is watched instead.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	cw := &ConfigWatcher{
		path:     path,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		current:  initial,
	}
	cw.wg.Add(1)
	go cw.start()
	return cw, nil
}

// Current returns the last configuration that loaded successfully.
func (cw *ConfigWatcher) Current() *Config {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.current
}

func (cw *ConfigWatcher) start() {
	defer cw.wg.Done()
	target := filepath.Clean(cw.path)
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case e, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError(e.Error())

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	c, err := LoadConfig(cw.path)
	if err != nil {
		LogWarn("config reload of %s failed, keeping previous values: %s", cw.path, err)
		return
	}
	cw.mutex.Lock()
	cw.current = c
	cw.mutex.Unlock()
	c.ApplyLogging()
	LogInfo("config %s reloaded", cw.path)
	cw.Reloaded.Fire()
}

func (cw *ConfigWatcher) Close() error {
	select {
	case <-cw.done:
		return errors.New("config watcher already closed")
	default:
	}
	close(cw.done)
	err := cw.fsnotify.Close()
	cw.wg.Wait()
	return err
}
