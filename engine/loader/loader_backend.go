package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
)

// loaderBackend defines the format-specific half of clip loading.
// Concrete implementations (e.g., gltfLoaderBackend) handle file layout details.
type loaderBackend interface {
	// LoadClips reads every animation clip from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - []animator.Clip: clips in document order
	//   - error: error if loading fails
	LoadClips(path string) ([]animator.Clip, error)

	// LoadClipsReader reads every animation clip from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data, false for glTF JSON
	//
	// Returns:
	//   - []animator.Clip: clips in document order
	//   - error: error if loading fails
	LoadClipsReader(r io.Reader, isGLB bool) ([]animator.Clip, error)
}
