package pngenc

import (
	stdpng "image/png"
	"bytes"
	"testing"
)

func solidRGBA(w, h int, r, g, b, a byte) []byte {
	pix := make([]byte, 4*w*h)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

func TestEncodeDecodesWithStandardLibrary(t *testing.T) {
	w, h := 4, 3
	pix := solidRGBA(w, h, 255, 255, 255, 0)
	out, err := Encode(pix, w, h)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	img, err := stdpng.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("stdlib could not decode our PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != w || bounds.Dy() != h {
		t.Errorf("decoded size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), w, h)
	}
}

func TestEncodeSignatureAndChunkOrder(t *testing.T) {
	out, err := Encode(solidRGBA(1, 1, 0, 0, 0, 0), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out[:8], signature) {
		t.Errorf("missing PNG signature")
	}
	if string(out[12:16]) != "IHDR" {
		t.Errorf("first chunk type = %q, want IHDR", out[12:16])
	}
	if !bytes.Contains(out, []byte("IDAT")) {
		t.Error("missing IDAT chunk")
	}
	if !bytes.HasSuffix(out, append([]byte("IEND"), crcOf("IEND", nil)...)) {
		t.Error("file does not end with a correctly-framed empty IEND chunk")
	}
}

func TestEncodeRejectsMismatchedBufferLength(t *testing.T) {
	if _, err := Encode(make([]byte, 3), 2, 2); err == nil {
		t.Error("expected error for undersized buffer")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	pix := solidRGBA(8, 8, 10, 20, 30, 40)
	a, err1 := Encode(pix, 8, 8)
	b, err2 := Encode(pix, 8, 8)
	if err1 != nil || err2 != nil {
		t.Fatalf("Encode errors: %v %v", err1, err2)
	}
	if !bytes.Equal(a, b) {
		t.Error("Encode is not deterministic for identical input")
	}
}

func crcOf(chunkType string, data []byte) []byte {
	var buf bytes.Buffer
	writeChunk(&buf, chunkType, data)
	return buf.Bytes()[len(buf.Bytes())-4:]
}
