package fontface

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fontatlas/fontatlas/internal/config"
)

// ErrFontUnresolved is returned by Resolve when no face could be
// opened for the given name or path and EmbeddedFallback is off.
var ErrFontUnresolved = fmt.Errorf("fontface: could not resolve font")

// Resolver implements the §6 collaborator interface:
// resolve(name_or_path) -> (face, display_name). It caches opened
// faces by resolved path, bounded by config.MaxCachedFaces, following
// the teacher engine's per-engine face-count cap.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]Face
	order []string // insertion order, for FIFO eviction
}

// NewResolver returns a Resolver with an empty face cache.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]Face)}
}

// Resolve maps a font input (a path, or a logical family name) to an
// opened Face plus the display name that should appear in the
// BMFont "info face=" line.
func (r *Resolver) Resolve(input string) (Face, string, error) {
	if looksLikePath(input) {
		face, err := r.openPath(input)
		if err != nil {
			return r.fallback(input)
		}
		return face, baseName(input), nil
	}

	cfg := config.Current()
	if path, ok := cfg.DefaultFontPaths[input]; ok {
		if face, err := r.openPath(path); err == nil {
			return face, input, nil
		}
	}
	if face, err := r.openPath(cfg.FallbackFontPath); err == nil {
		return face, input, nil
	}

	return r.fallback(input)
}

func (r *Resolver) fallback(displayName string) (Face, string, error) {
	if config.Current().EmbeddedFallback {
		return NewEmbeddedFace(), displayName, nil
	}
	return nil, "", ErrFontUnresolved
}

func (r *Resolver) openPath(path string) (Face, error) {
	r.mu.Lock()
	if f, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return f, nil
	}
	r.mu.Unlock()

	face, err := NewSfntFaceFromFile(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictIfFull()
	r.cache[path] = face
	r.order = append(r.order, path)
	return face, nil
}

func (r *Resolver) evictIfFull() {
	max := config.Current().MaxCachedFaces
	if max <= 0 {
		return
	}
	for len(r.order) >= max {
		oldest := r.order[0]
		r.order = r.order[1:]
		if f, ok := r.cache[oldest]; ok {
			f.Close()
			delete(r.cache, oldest)
		}
	}
}

// Close releases every cached face. Safe to call once at shutdown.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.cache {
		f.Close()
	}
	r.cache = make(map[string]Face)
	r.order = nil
}

func looksLikePath(s string) bool {
	return strings.ContainsAny(s, `/\.`)
}

func baseName(path string) string {
	return filepath.Base(path)
}
