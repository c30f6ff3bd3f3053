package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
)

// gltfAnimationExtractorImpl is the implementation of the gltfAnimationExtractor interface.
type gltfAnimationExtractorImpl struct {
	parser gltfParser
}

// gltfAnimationExtractor turns the animations of a parsed glTF document into clip descriptions.
// Only timing is extracted; keyframe values stay in the buffers.
type gltfAnimationExtractor interface {
	// ExtractClip extracts a single animation by index.
	// The duration is the latest keyframe time over all samplers used by a channel.
	// Unnamed animations are named "animation_<index>".
	//
	// Parameters:
	//   - animIndex: the index of the animation in the document
	//
	// Returns:
	//   - animator.Clip: the looping clip description
	//   - error: error if the index or a sampler is invalid
	ExtractClip(animIndex int) (animator.Clip, error)

	// ExtractClips extracts every animation in document order.
	//
	// Returns:
	//   - []animator.Clip: one clip per animation
	//   - error: error if any animation fails to extract
	ExtractClips() ([]animator.Clip, error)
}

var _ gltfAnimationExtractor = &gltfAnimationExtractorImpl{}

// newGLTFAnimationExtractor creates a new animation extractor for a parsed document.
func newGLTFAnimationExtractor(parser gltfParser) gltfAnimationExtractor {
	return &gltfAnimationExtractorImpl{parser: parser}
}

func (e *gltfAnimationExtractorImpl) ExtractClip(animIndex int) (animator.Clip, error) {
	doc := e.parser.Document()
	if doc == nil {
		return animator.Clip{}, errNoDocument
	}
	if animIndex < 0 || animIndex >= len(doc.Animations) {
		return animator.Clip{}, fmt.Errorf("animation index %d out of range", animIndex)
	}

	anim := &doc.Animations[animIndex]
	name := anim.Name
	if name == "" {
		name = fmt.Sprintf("animation_%d", animIndex)
	}

	var duration float64
	seen := make(map[int]bool, len(anim.Samplers))
	for i := range anim.Channels {
		ch := &anim.Channels[i]
		if ch.Sampler < 0 || ch.Sampler >= len(anim.Samplers) {
			return animator.Clip{}, fmt.Errorf("animation %q channel %d: invalid sampler index %d", name, i, ch.Sampler)
		}
		if seen[ch.Sampler] {
			continue
		}
		seen[ch.Sampler] = true

		end, err := e.samplerEnd(&anim.Samplers[ch.Sampler])
		if err != nil {
			return animator.Clip{}, fmt.Errorf("animation %q channel %d: %w", name, i, err)
		}
		duration = max(duration, end)
	}

	return animator.Clip{Name: name, Duration: duration, Loop: true}, nil
}

func (e *gltfAnimationExtractorImpl) ExtractClips() ([]animator.Clip, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, errNoDocument
	}

	clips := make([]animator.Clip, 0, len(doc.Animations))
	for i := range doc.Animations {
		clip, err := e.ExtractClip(i)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// samplerEnd returns the last keyframe time of a sampler input.
// The accessor max bound stands in when the input has no bufferView.
func (e *gltfAnimationExtractorImpl) samplerEnd(sampler *gltfAnimSampler) (float64, error) {
	doc := e.parser.Document()
	if sampler.Input < 0 || sampler.Input >= len(doc.Accessors) {
		return 0, fmt.Errorf("sampler input accessor %d out of range", sampler.Input)
	}

	acc := &doc.Accessors[sampler.Input]
	if acc.BufferView == nil {
		if len(acc.Max) > 0 {
			return float64(acc.Max[0]), nil
		}
		return 0, nil
	}

	times, err := e.parser.ReadScalarAccessor(sampler.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to read keyframe times: %w", err)
	}
	if len(times) == 0 {
		return 0, nil
	}
	return float64(times[len(times)-1]), nil
}
