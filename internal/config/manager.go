package config

import (
	"context"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

type Manager struct {
	mu          sync.RWMutex
	config      *Config
	configPath  string
	watcher     *fsnotify.Watcher
	subscribers []chan *Config
	wg          sync.WaitGroup
}

// NewManager loads configPath and keeps it as the active configuration.
// An empty configPath means the user's config file.
func NewManager(configPath string) (*Manager, error) {
	log.Printf("Config manager: initializing configuration system...")

	if configPath == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	config, err := LoadFrom(configPath)
	if err != nil {
		log.Printf("Config manager: failed to load initial configuration: %v", err)
		return nil, err
	}

	log.Printf("Config manager: validating initial configuration...")
	if err := config.Validate(); err != nil {
		log.Printf("Config manager: invalid initial configuration: %v", err)
		return nil, err
	}

	m := &Manager{
		config:     config,
		configPath: configPath,
	}

	log.Printf("Config manager: initialization completed successfully")
	return m, nil
}

func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Subscribe returns a channel that receives each successfully reloaded
// config. Slow readers only see the latest value.
func (m *Manager) Subscribe() <-chan *Config {
	ch := make(chan *Config, 1)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) StartWatching(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	m.watcher = watcher

	// Watch the directory so editors that replace the file are still seen.
	configDir := filepath.Dir(m.configPath)
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return err
	}

	m.wg.Add(1)
	go m.watchLoop(ctx)

	log.Printf("Config manager: watching %s for changes", m.configPath)
	return nil
}

func (m *Manager) Stop() {
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.wg.Wait()

	m.mu.Lock()
	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = nil
	m.mu.Unlock()
}

func (m *Manager) watchLoop(ctx context.Context) {
	defer m.wg.Done()
	configFileName := filepath.Base(m.configPath)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != configFileName {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Printf("Config manager: file change detected: %s. Reloading config...", event.Name)
				m.reloadConfig()
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) reloadConfig() {
	log.Printf("Config manager: starting configuration reload...")

	newConfig, err := LoadFrom(m.configPath)
	if err != nil {
		log.Printf("Config manager: failed to reload config: %v", err)
		return
	}

	log.Printf("Config manager: validating new configuration...")
	if err := newConfig.Validate(); err != nil {
		log.Printf("Config manager: invalid config after reload: %v", err)
		return
	}

	m.mu.Lock()
	m.config = newConfig
	for _, ch := range m.subscribers {
		// drop the stale value so the send never blocks
		select {
		case <-ch:
		default:
		}
		configCopy := *newConfig
		ch <- &configCopy
	}
	m.mu.Unlock()

	log.Printf("Config manager: configuration successfully reloaded")
}
