//go:build !freetype

package fontface

import "errors"

// FreetypeFace is a stub used when the binary is built without the
// "freetype" tag (the default). Rebuild with `-tags freetype` (and a
// system FreeType2 + pkg-config available) to get the real cgo engine
// in freetype_engine.go.
type FreetypeFace struct{}

// NewFreetypeFaceFromFile always fails in the default build.
func NewFreetypeFaceFromFile(path string) (*FreetypeFace, error) {
	return nil, errors.New("fontface: FreeType support not compiled in - rebuild with -tags freetype")
}

func (f *FreetypeFace) SetPixelSize(px int) error        { return errUnavailable }
func (f *FreetypeFace) AscenderPx() int                  { return 0 }
func (f *FreetypeFace) Close() error                      { return nil }
func (f *FreetypeFace) LoadAndRender(cp rune) (Glyph, error) {
	return Glyph{}, errUnavailable
}

var errUnavailable = errors.New("fontface: FreeType support not compiled in")
