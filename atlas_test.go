package fontatlas

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/fontatlas/fontatlas/internal/atlaserr"
	"github.com/fontatlas/fontatlas/internal/config"
)

// withEmbeddedFallback turns on EmbeddedFallback and empties the font
// table and fallback path, so a logical font name cannot resolve to a
// real filesystem font and tests exercise the dependency-free
// EmbeddedFace instead.
func withEmbeddedFallback(t *testing.T) {
	t.Helper()
	cfg := config.Current()
	cfg.EmbeddedFallback = true
	cfg.DefaultFontPaths = map[string]string{}
	cfg.FallbackFontPath = ""
	config.SetConfig(cfg)
	t.Cleanup(config.Reset)
}

func TestGenerateEmptyText(t *testing.T) {
	withEmbeddedFallback(t)
	req := DefaultRequest()
	req.Text = ""
	req.Font = "no-such-font"
	req.Width = 64

	resp, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(resp.Descriptor, "chars count=0\n") {
		t.Errorf("expected chars count=0, got:\n%s", resp.Descriptor)
	}

	img, err := png.Decode(bytes.NewReader(resp.Image))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("atlas size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestGenerateDeduplicatesCodePoints(t *testing.T) {
	withEmbeddedFallback(t)
	req := DefaultRequest()
	req.Text = "AABBA"
	req.Font = "no-such-font"
	req.Width = 128

	resp, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(resp.Descriptor, "chars count=2\n") {
		t.Errorf("expected chars count=2, got:\n%s", resp.Descriptor)
	}
	if !strings.Contains(resp.Descriptor, "char id=65 ") {
		t.Error("missing char id=65")
	}
	if !strings.Contains(resp.Descriptor, "char id=66 ") {
		t.Error("missing char id=66")
	}
}

func TestGenerateWhitespaceGlyphIsZeroSize(t *testing.T) {
	withEmbeddedFallback(t)
	req := DefaultRequest()
	req.Text = " A"
	req.Font = "no-such-font"
	req.Width = 128

	resp, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(resp.Descriptor, "char id=32 x=0 y=0 width=0 height=0 xoffset=0 yoffset=0") {
		t.Errorf("space glyph not zero-size:\n%s", resp.Descriptor)
	}
}

func TestGenerateGlobalOffsetLinearity(t *testing.T) {
	withEmbeddedFallback(t)
	base := DefaultRequest()
	base.Text = "A"
	base.Font = "no-such-font"
	base.Width = 128

	withOffset := base
	withOffset.GlobalXOffset = 3

	r1, err := Generate(base)
	if err != nil {
		t.Fatalf("Generate base: %v", err)
	}
	r2, err := Generate(withOffset)
	if err != nil {
		t.Fatalf("Generate withOffset: %v", err)
	}

	if !bytes.Equal(r1.Image, r2.Image) {
		t.Error("PNG bytes must be identical when only globalXOffset changes")
	}

	x1 := extractField(t, r1.Descriptor, "xoffset=")
	x2 := extractField(t, r2.Descriptor, "xoffset=")
	if x2-x1 != 3 {
		t.Errorf("xoffset delta = %d, want 3", x2-x1)
	}
}

func TestGenerateFontUnresolvedReturnsEmptyResponse(t *testing.T) {
	cfg := config.Current()
	cfg.EmbeddedFallback = false
	cfg.DefaultFontPaths = map[string]string{}
	cfg.FallbackFontPath = ""
	config.SetConfig(cfg)
	t.Cleanup(config.Reset)

	resp, err := Generate(Request{Text: "A", Font: "nope", Size: 12, Width: 32, PackMode: config.PackPOT})
	if err != nil {
		t.Fatalf("expected nil error on FontUnresolved, got %v", err)
	}
	if resp.Image != nil || resp.Descriptor != "" {
		t.Error("expected empty response when font cannot be resolved")
	}
}

func TestGeneratePackingOverflowWithoutAutoPack(t *testing.T) {
	withEmbeddedFallback(t)
	req := DefaultRequest()
	req.Text = "Hello, World! This is a lot of distinct glyphs to not fit."
	req.Font = "no-such-font"
	req.Size = 64
	req.Width = 8 // deliberately too small, autoPack off
	req.AutoPack = false

	_, err := Generate(req)
	if err == nil {
		t.Fatal("expected ErrPackingOverflow")
	}
	if !errors.Is(err, atlaserr.ErrPackingOverflow) {
		t.Errorf("expected ErrPackingOverflow, got %v", err)
	}
}

func TestGenerateAutoPackGrows(t *testing.T) {
	withEmbeddedFallback(t)
	req := DefaultRequest()
	req.Text = "Hello, World! This is a lot of distinct glyphs to not fit in a tiny bin."
	req.Font = "no-such-font"
	req.Size = 32
	req.Width = 8
	req.AutoPack = true
	req.PackMode = config.PackPOT

	resp, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(resp.Image))
	if err != nil {
		t.Fatalf("decoding grown PNG: %v", err)
	}
	side := img.Bounds().Dx()
	if side&(side-1) != 0 {
		t.Errorf("grown atlas side %d is not a power of two", side)
	}
}

func extractField(t *testing.T, descriptor, key string) int {
	t.Helper()
	i := strings.Index(descriptor, key)
	if i < 0 {
		t.Fatalf("field %q not found in descriptor:\n%s", key, descriptor)
	}
	rest := descriptor[i+len(key):]
	end := strings.IndexAny(rest, " \n")
	if end < 0 {
		end = len(rest)
	}
	var v int
	neg := false
	s := rest[:end]
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v
}
