package loader

import "github.com/Carmen-Shannon/oxy-garden/engine/animator"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithExclude is an option builder that replaces the set of clip names dropped from catalogs.
// Passing no names disables filtering.
//
// Parameters:
//   - names: the clip names to exclude
//
// Returns:
//   - LoaderBuilderOption: a function that applies the exclusion option to a loader
func WithExclude(names ...string) LoaderBuilderOption {
	return func(l *loader) {
		l.exclude = make(map[string]struct{}, len(names))
		for _, n := range names {
			l.exclude[n] = struct{}{}
		}
	}
}

// WithClips is an option builder that pre-populates the catalog cache.
// Pre-populated catalogs are stored as given, without exclusion filtering.
//
// Parameters:
//   - key: the cache key for the catalog
//   - clips: the clips to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the catalog option to a loader
func WithClips(key string, clips []animator.Clip) LoaderBuilderOption {
	return func(l *loader) {
		l.catalogs[key] = append([]animator.Clip{}, clips...)
	}
}
