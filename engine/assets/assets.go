package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/motion/engine/core"
)

type AssetType int

const (
	AssetTypeNone AssetType = iota
	AssetTypeSceneToml
	AssetTypeSceneYaml
)

type AssetInfo struct {
	Path       string
	Type       AssetType
	LastLoaded time.Time
}

// AssetManager indexes the scene files under a directory and keeps the index
// current while files are added, changed or removed.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[AssetType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	isClosed bool

	// Changed fires after the index is updated by a file event.
	Changed core.Signal
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[AssetType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	// Register loaders
	am.registerLoader(AssetTypeSceneToml, TomlLoader{})
	am.registerLoader(AssetTypeSceneYaml, YamlLoader{})
	return am, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	if err := am.watchRecursive(assetsDir); err != nil {
		return err
	}
	am.wg.Add(1)
	go am.start()
	return nil
}

func (am *AssetManager) Close() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	am.wg.Wait()
	return am.fsnotify.Close()
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType AssetType, loader Loader) {
	am.loaders[assetType] = loader
}

// Scenes lists the indexed scene names, sorted.
func (am *AssetManager) Scenes() []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	names := make([]string, 0, len(am.assets))
	for path := range am.assets {
		names = append(names, sceneName(path))
	}
	sort.Strings(names)
	return names
}

// LoadScene decodes the indexed scene file whose base name, without the
// extension, is name.
func (am *AssetManager) LoadScene(name string) (*SceneDescription, error) {
	am.mutex.Lock()
	var (
		asset  AssetInfo
		exists bool
	)
	for path, info := range am.assets {
		if sceneName(path) == name {
			asset, exists = info, true
			info.LastLoaded = time.Now()
			am.assets[path] = info
			break
		}
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s", name)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %d", asset.Type)
	}
	return loader.Load(asset.Path)
}

// LoadSceneFile decodes a scene file outside the indexed directory.
func (am *AssetManager) LoadSceneFile(path string) (*SceneDescription, error) {
	loader, ok := am.loaders[determineAssetType(path)]
	if !ok {
		return nil, fmt.Errorf("unsupported scene format %q", filepath.Ext(path))
	}
	return loader.Load(path)
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
			}
			am.Changed.Fire()

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the scene files found on the way.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return
	}
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path: path,
		Type: assetType,
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func sceneName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func determineAssetType(path string) AssetType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return AssetTypeSceneToml
	case ".yaml", ".yml":
		return AssetTypeSceneYaml
	default:
		return AssetTypeNone
	}
}
