//go:build freetype

// FreetypeFace wraps the system FreeType2 library via cgo. It is only
// compiled with `-tags freetype` (and requires `pkg-config freetype2`
// at build time); see freetype_stub.go for the default build's
// behavior. Adapted from the reference engine's FreeType2 integration:
// one FT_Library per process, one FT_Face per open font, glyphs
// rendered via FT_Load_Char(..., FT_LOAD_RENDER) and read back as
// 8-bit coverage from FT_Bitmap.
package fontface

/*
#cgo pkg-config: freetype2
#include <ft2build.h>
#include FT_FREETYPE_H
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

var (
	ftLibOnce sync.Once
	ftLib     C.FT_Library
	ftLibErr  error
)

func ftLibrary() (C.FT_Library, error) {
	ftLibOnce.Do(func() {
		if C.FT_Init_FreeType(&ftLib) != 0 {
			ftLibErr = errors.New("fontface: FT_Init_FreeType failed")
		}
	})
	return ftLib, ftLibErr
}

// FreetypeFace is a Face backed by a single FT_Face.
type FreetypeFace struct {
	face     C.FT_Face
	ascender int
	closed   bool
}

// NewFreetypeFaceFromFile loads a font file through FreeType.
func NewFreetypeFaceFromFile(path string) (*FreetypeFace, error) {
	lib, err := ftLibrary()
	if err != nil {
		return nil, err
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var face C.FT_Face
	if errCode := C.FT_New_Face(lib, cpath, 0, &face); errCode != 0 {
		return nil, fmt.Errorf("fontface: FT_New_Face(%s): FreeType error %d", path, int(errCode))
	}
	return &FreetypeFace{face: face}, nil
}

func (f *FreetypeFace) SetPixelSize(px int) error {
	if px <= 0 {
		return ErrInvalidPixelSize
	}
	if C.FT_Set_Pixel_Sizes(f.face, 0, C.FT_UInt(px)) != 0 {
		return fmt.Errorf("fontface: FT_Set_Pixel_Sizes(%d) failed", px)
	}
	f.ascender = int(f.face.size.metrics.ascender >> 6)
	return nil
}

func (f *FreetypeFace) AscenderPx() int { return f.ascender }

func (f *FreetypeFace) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	C.FT_Done_Face(f.face)
	return nil
}

func (f *FreetypeFace) LoadAndRender(cp rune) (Glyph, error) {
	if C.FT_Load_Char(f.face, C.FT_ULong(cp), C.FT_LOAD_RENDER) != 0 {
		return Glyph{}, ErrNoGlyph
	}

	glyph := f.face.glyph
	bmp := glyph.bitmap

	w, h := int(bmp.width), int(bmp.rows)
	xadv := int(glyph.advance.x >> 6)
	xoff := int(glyph.bitmap_left)
	yoff := f.ascender - int(glyph.bitmap_top)

	if w == 0 || h == 0 {
		return Glyph{CP: cp, XAdv: xadv}, nil
	}

	coverage := make([]byte, w*h)
	if bmp.buffer != nil {
		pitch := int(bmp.pitch)
		stride := pitch
		if stride < 0 {
			stride = -stride
		}
		src := unsafe.Slice((*byte)(unsafe.Pointer(bmp.buffer)), stride*h)
		for y := 0; y < h; y++ {
			srcRow := y
			if pitch < 0 {
				srcRow = h - 1 - y
			}
			copy(coverage[y*w:(y+1)*w], src[srcRow*stride:srcRow*stride+w])
		}
	}

	return Glyph{
		CP:       cp,
		W:        w,
		H:        h,
		XAdv:     xadv,
		XOff:     xoff,
		YOff:     yoff,
		Coverage: coverage,
	}, nil
}
