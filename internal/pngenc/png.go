// Package pngenc produces a minimal, standards-compliant PNG
// container (component C7): signature, IHDR, one zlib-compressed IDAT
// of None-filtered scanlines, and IEND, each chunk framed with its
// length and a CRC-32 over type+data. This is hand-rolled rather than
// built on image/png because spec.md §4.7 requires byte-exact chunk
// framing (a specific, minimal chunk set) that the standard encoder
// does not guarantee to produce — no third-party PNG chunk writer is
// part of the available library stack either, so this is stdlib
// compress/zlib and hash/crc32 by necessity, not convenience.
package pngenc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ErrCompressionFailure is returned if the zlib stream could not be
// written (§7: CompressionFailure). Unlike the reference engine, this
// implementation never emits a PNG with a missing IDAT chunk; it
// signals the failure explicitly instead.
var ErrCompressionFailure = errors.New("pngenc: IDAT compression failed")

// Encode serializes rgba (4*w*h bytes, row-major RGBA, exactly the
// layout canvas.Canvas.Pix uses) as a minimal RGBA PNG.
func Encode(rgba []byte, w, h int) ([]byte, error) {
	if len(rgba) != 4*w*h {
		return nil, fmt.Errorf("pngenc: rgba has %d bytes, want %d for %dx%d", len(rgba), 4*w*h, w, h)
	}

	var out bytes.Buffer
	out.Write(signature)

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: RGBA
	ihdr[10] = 0
	ihdr[11] = 0
	ihdr[12] = 0
	writeChunk(&out, "IHDR", ihdr)

	idat, err := deflateScanlines(rgba, w, h)
	if err != nil {
		return nil, ErrCompressionFailure
	}
	writeChunk(&out, "IDAT", idat)

	writeChunk(&out, "IEND", nil)

	return out.Bytes(), nil
}

// deflateScanlines applies the None filter (a leading 0x00 byte) to
// each scanline and zlib-compresses the concatenated result.
func deflateScanlines(rgba []byte, w, h int) ([]byte, error) {
	raw := make([]byte, 0, h*(4*w+1))
	stride := 4 * w
	for y := 0; y < h; y++ {
		raw = append(raw, 0x00)
		raw = append(raw, rgba[y*stride:(y+1)*stride]...)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeChunk frames data as length | type | data | CRC32(type||data),
// matching the reference engine's write_chunk byte for byte.
func writeChunk(out *bytes.Buffer, chunkType string, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	out.Write(lenBuf[:])

	out.WriteString(chunkType)
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)

	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc.Sum32())
	out.Write(crcBuf[:])
}
