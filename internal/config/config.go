// Package config centralizes the tunables of the atlas generation pipeline:
// the hard size cap, the power-of-two/aligned growth constants, and the
// font resolution fallback table. Callers that embed the pipeline in a
// larger service mutate it once via SetConfig before the first request.
package config

import (
	"runtime"
	"sync"
)

// PackMode selects the atlas-sizer growth discipline (C4).
type PackMode string

const (
	PackPOT      PackMode = "pot"
	PackAligned  PackMode = "aligned"
)

// Config holds the global configuration for the atlas pipeline.
type Config struct {
	// MaxAtlasSide is the hard cap on bin width/height (spec §4.4: 8192).
	MaxAtlasSide int

	// MinPOTSide is the smallest power-of-two a POT bin may start at.
	MinPOTSide int

	// AlignedStep is the multiple "aligned" packing rounds minSide up to.
	AlignedStep int

	// AlignedGrowth is the amount added to both dimensions on an
	// "aligned" overflow retry.
	AlignedGrowth int

	// DefaultFontPaths maps well-known logical family names to a
	// fallback file path, consulted by the resolver when the font
	// input does not look like a path. Generalizes TextEngine's
	// hardcoded Windows font table to a small, OS-appropriate set.
	DefaultFontPaths map[string]string

	// FallbackFontPath is tried when a logical name has no entry in
	// DefaultFontPaths.
	FallbackFontPath string

	// EmbeddedFallback, if true, resolves to the built-in embedded
	// bitmap face instead of FontUnresolved when no file can be opened.
	EmbeddedFallback bool

	// MaxCachedFaces bounds how many resolved faces the resolver keeps
	// open at once (adapted from the teacher engine's maxFaces cap).
	MaxCachedFaces int
}

var (
	mu      sync.RWMutex
	current = defaultConfig()
)

func defaultConfig() Config {
	return Config{
		MaxAtlasSide:     8192,
		MinPOTSide:       16,
		AlignedStep:      4,
		AlignedGrowth:    32,
		DefaultFontPaths: defaultFontPaths(),
		FallbackFontPath: defaultFallbackPath(),
		EmbeddedFallback: false,
		MaxCachedFaces:   32,
	}
}

func defaultFontPaths() map[string]string {
	switch runtime.GOOS {
	case "windows":
		return map[string]string{
			"Arial":            `C:/Windows/Fonts/arial.ttf`,
			"Times New Roman":  `C:/Windows/Fonts/times.ttf`,
			"Courier New":      `C:/Windows/Fonts/cour.ttf`,
			"Impact":           `C:/Windows/Fonts/impact.ttf`,
		}
	case "darwin":
		return map[string]string{
			"Arial":           "/Library/Fonts/Arial.ttf",
			"Times New Roman": "/Library/Fonts/Times New Roman.ttf",
			"Courier New":     "/Library/Fonts/Courier New.ttf",
			"Impact":          "/Library/Fonts/Impact.ttf",
		}
	default:
		return map[string]string{
			"Arial":           "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"Times New Roman": "/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
			"Courier New":     "/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
			"Impact":          "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		}
	}
}

func defaultFallbackPath() string {
	paths := defaultFontPaths()
	return paths["Arial"]
}

// SetConfig replaces the global configuration. Callers should do this
// once at startup, before the first fontatlas.Generate call.
func SetConfig(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}

// Current returns a copy of the current global configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Reset restores the default configuration. Primarily useful in tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaultConfig()
}
