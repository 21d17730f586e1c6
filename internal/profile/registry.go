package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry holds the named mapping profiles loaded from a directory of YAML
// files, one profile per file.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{profiles: make(map[string]*Profile), logger: logger}
}

// LoadDir reads every *.yaml / *.yml file under dir. Invalid files are
// logged and skipped; a missing directory is not an error so a fresh
// deployment can start with zero profiles.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("profile directory missing, starting empty", "dir", dir)
			return nil
		}
		return fmt.Errorf("read profile dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			r.logger.Error("failed to read profile", "path", path, "error", err)
			continue
		}
		var p Profile
		if err := yaml.Unmarshal(raw, &p); err != nil {
			r.logger.Error("failed to parse profile", "path", path, "error", err)
			continue
		}
		if err := p.Validate(); err != nil {
			r.logger.Error("invalid profile", "path", path, "error", err)
			continue
		}
		r.mu.Lock()
		r.profiles[p.Name] = &p
		r.mu.Unlock()
		r.logger.Info("loaded mapping profile", "name", p.Name, "institution", p.Institution)
	}
	return nil
}

// Get returns the named profile or nil.
func (r *Registry) Get(name string) *Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[name]
}

// Put registers or replaces a profile (e.g. one validated from a JSON payload).
func (r *Registry) Put(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Name] = p
}

// Names lists the registered profile names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for n := range r.profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
