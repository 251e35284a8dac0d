package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/fontatlas/fontatlas/internal/config"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte(`{"text":"A"}`)

	if err := writeFrame(&buf, payload); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
	got, err := readFrame(&buf)
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("readFrame = %q, want %q", got, payload)
	}
}

func TestReadFrameEOF(t *testing.T) {
	_, err := readFrame(bytes.NewReader(nil))
	if err != io.EOF {
		t.Errorf("expected io.EOF on empty stream, got %v", err)
	}
}

func TestToRequestAppliesDefaultsForZeroFields(t *testing.T) {
	req := toRequest(requestMessage{Text: "hello"})
	if req.Font != "Arial" || req.Size != 48 || req.Width != 512 {
		t.Errorf("expected defaults applied, got %+v", req)
	}
	if req.Text != "hello" {
		t.Errorf("Text = %q, want hello", req.Text)
	}
}

func TestToRequestHonorsAlignedPackMode(t *testing.T) {
	req := toRequest(requestMessage{PackMode: "aligned"})
	if req.PackMode != config.PackAligned {
		t.Errorf("PackMode = %v, want aligned", req.PackMode)
	}
}
