package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
// Every load uses a fresh parser so concurrent loads share no state.
type gltfLoaderBackendImpl struct{}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
func newGLTFLoaderBackend() gltfLoaderBackend {
	return &gltfLoaderBackendImpl{}
}

func (b *gltfLoaderBackendImpl) LoadClips(path string) ([]animator.Clip, error) {
	p := newGLTFParser()
	if err := p.Parse(path); err != nil {
		return nil, err
	}
	return newGLTFAnimationExtractor(p).ExtractClips()
}

func (b *gltfLoaderBackendImpl) LoadClipsReader(r io.Reader, isGLB bool) ([]animator.Clip, error) {
	p := newGLTFParser()
	if err := p.ParseReader(r, isGLB); err != nil {
		return nil, err
	}
	return newGLTFAnimationExtractor(p).ExtractClips()
}
