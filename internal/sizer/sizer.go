// Package sizer implements the atlas sizer (component C4): choosing
// initial bin dimensions for a set of glyphs and growing them on
// packing overflow, per one of two growth disciplines.
package sizer

import (
	"math"

	"github.com/fontatlas/fontatlas/internal/config"
)

// ErrTooLarge is returned when growth would exceed the configured
// hard cap without having found a fit.
type ErrTooLarge struct {
	Side int
}

func (e ErrTooLarge) Error() string {
	return "sizer: atlas side exceeds hard cap"
}

// Estimate summarizes the glyphs that will be packed, in the padded
// "effective" units the sizer reasons in (spec.md §4.4).
type Estimate struct {
	TotalArea   int64
	MaxEffectW  int
	MaxEffectH  int
}

// Initial chooses the starting bin dimensions (always square).
//
// When autoPack is false the bin is atlasWidth×atlasWidth with no
// growth, regardless of est.
//
// When autoPack is true, minSide is the max of the largest effective
// glyph dimension and ceil(sqrt(totalArea)); packMode selects whether
// the starting side is rounded up to a power of two (>= MinPOTSide)
// or to a multiple of AlignedStep.
func Initial(autoPack bool, packMode config.PackMode, atlasWidth int, est Estimate) int {
	if !autoPack {
		return atlasWidth
	}

	minSide := maxInt(est.MaxEffectW, est.MaxEffectH)
	areaSide := int(math.Ceil(math.Sqrt(float64(est.TotalArea))))
	minSide = maxInt(minSide, areaSide)

	cfg := config.Current()
	switch packMode {
	case config.PackAligned:
		return roundUp(minSide, cfg.AlignedStep)
	default:
		return nextPOT(minSide, cfg.MinPOTSide)
	}
}

// Grow returns the next bin side to try after a packing overflow, or
// ErrTooLarge if growing would exceed the hard cap.
func Grow(packMode config.PackMode, side int) (int, error) {
	cfg := config.Current()
	var next int
	switch packMode {
	case config.PackAligned:
		next = side + cfg.AlignedGrowth
	default:
		next = side * 2
	}
	if next > cfg.MaxAtlasSide {
		return 0, ErrTooLarge{Side: next}
	}
	return next, nil
}

func nextPOT(minSide, floor int) int {
	pot := floor
	for pot < minSide {
		pot *= 2
	}
	return pot
}

func roundUp(v, step int) int {
	if v%step != 0 {
		v += step - (v % step)
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
