package sizer

import (
	"testing"

	"github.com/fontatlas/fontatlas/internal/config"
)

func TestInitialNoAutoPackUsesRequestedWidth(t *testing.T) {
	side := Initial(false, config.PackPOT, 512, Estimate{TotalArea: 999999})
	if side != 512 {
		t.Errorf("Initial(autoPack=false) = %d, want 512", side)
	}
}

func TestInitialPOTRoundsUpAndRespectsFloor(t *testing.T) {
	config.Reset()
	side := Initial(true, config.PackPOT, 512, Estimate{TotalArea: 100, MaxEffectW: 10, MaxEffectH: 10})
	if side != 16 {
		t.Errorf("Initial tiny estimate = %d, want 16 (MinPOTSide)", side)
	}

	side = Initial(true, config.PackPOT, 512, Estimate{TotalArea: 90000, MaxEffectW: 50, MaxEffectH: 50})
	if side != 512 {
		t.Errorf("Initial area=90000 = %d, want 512 (smallest POT >= 300)", side)
	}
}

func TestInitialAlignedRoundsToStep(t *testing.T) {
	config.Reset()
	side := Initial(true, config.PackAligned, 512, Estimate{TotalArea: 10000, MaxEffectW: 101, MaxEffectH: 50})
	if side != 104 {
		t.Errorf("Initial aligned = %d, want 104 (101 rounded up to multiple of 4)", side)
	}
}

func TestGrowPOTDoubles(t *testing.T) {
	config.Reset()
	next, err := Grow(config.PackPOT, 256)
	if err != nil || next != 512 {
		t.Errorf("Grow(pot, 256) = %d, %v; want 512, nil", next, err)
	}
}

func TestGrowAlignedAddsConstant(t *testing.T) {
	config.Reset()
	next, err := Grow(config.PackAligned, 256)
	if err != nil || next != 288 {
		t.Errorf("Grow(aligned, 256) = %d, %v; want 288, nil", next, err)
	}
}

func TestGrowExceedsCap(t *testing.T) {
	config.Reset()
	_, err := Grow(config.PackPOT, 8192)
	if err == nil {
		t.Error("Grow at the cap should fail")
	}
}
