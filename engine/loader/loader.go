package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
)

// ErrUnsupportedFormat is returned for files the loader has no backend for.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// DefaultExcludedClips lists clips dropped from every catalog unless overridden.
var DefaultExcludedClips = []string{"TPose"}

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	catalogs map[string][]animator.Clip
	exclude  map[string]struct{}

	backend loaderBackend
}

// Loader reads animation clip catalogs out of model files and caches them.
// The file format is abstracted behind a backend chosen at construction.
type Loader interface {
	// LoadClips reads the clips of a model file and caches the result by path.
	// If the path is already cached, the cached catalog is returned.
	// Excluded clip names are filtered out; duplicate names are kept as found.
	//
	// Parameters:
	//   - path: the file path to the model file (.gltf or .glb)
	//
	// Returns:
	//   - []animator.Clip: the clip catalog in document order
	//   - error: error if the format is unsupported or loading fails
	LoadClips(path string) ([]animator.Clip, error)

	// LoadClipsReader reads clips from a reader stream and caches them by the given name.
	//
	// Parameters:
	//   - name: the cache key for the catalog
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - []animator.Clip: the clip catalog in document order
	//   - error: error if loading fails
	LoadClipsReader(name string, r io.Reader, isGLB bool) ([]animator.Clip, error)

	// Get retrieves a cached catalog by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - []animator.Clip: a copy of the cached catalog or nil
	Get(name string) []animator.Clip

	// Catalogs returns a copy of the full catalog cache.
	//
	// Returns:
	//   - map[string][]animator.Clip: all cached catalogs keyed by name
	Catalogs() map[string][]animator.Clip
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		catalogs: make(map[string][]animator.Clip),
		exclude:  make(map[string]struct{}, len(DefaultExcludedClips)),
	}
	for _, name := range DefaultExcludedClips {
		l.exclude[name] = struct{}{}
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) LoadClips(path string) ([]animator.Clip, error) {
	if cached := l.Get(path); cached != nil {
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	clips, err := backend.LoadClips(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return l.store(path, clips), nil
}

func (l *loader) LoadClipsReader(name string, r io.Reader, isGLB bool) ([]animator.Clip, error) {
	if cached := l.Get(name); cached != nil {
		return cached, nil
	}
	if l.backend == nil {
		return nil, ErrUnsupportedFormat
	}

	clips, err := l.backend.LoadClipsReader(r, isGLB)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}
	return l.store(name, clips), nil
}

func (l *loader) Get(name string) []animator.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()

	clips, ok := l.catalogs[name]
	if !ok {
		return nil
	}
	return append([]animator.Clip{}, clips...)
}

func (l *loader) Catalogs() map[string][]animator.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string][]animator.Clip, len(l.catalogs))
	for k, v := range l.catalogs {
		result[k] = append([]animator.Clip{}, v...)
	}
	return result
}

// store filters excluded clips and caches the catalog under key.
func (l *loader) store(key string, clips []animator.Clip) []animator.Clip {
	kept := make([]animator.Clip, 0, len(clips))
	for _, c := range clips {
		if _, skip := l.exclude[c.Name]; skip {
			continue
		}
		kept = append(kept, c)
	}

	l.mu.Lock()
	l.catalogs[key] = kept
	l.mu.Unlock()

	return append([]animator.Clip{}, kept...)
}

// resolveBackend selects an appropriate loader backend based on the file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		if l.backend != nil {
			return l.backend, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
