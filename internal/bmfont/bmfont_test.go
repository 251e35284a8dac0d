package bmfont

import (
	"strings"
	"testing"
)

func TestBuildEmptyChars(t *testing.T) {
	out := Build(Info{Face: "Arial", Size: 48, Padding: 2, Spacing: 2}, Common{LineHeight: 48, ScaleW: 512, ScaleH: 512}, nil)
	if !strings.Contains(out, "chars count=0\n") {
		t.Errorf("expected chars count=0, got:\n%s", out)
	}
	if !strings.HasPrefix(out, `info face="Arial" size=48`) {
		t.Errorf("unexpected info line:\n%s", out)
	}
}

func TestBuildBaseIsEightyPercentOfLineHeight(t *testing.T) {
	out := Build(Info{Face: "Arial", Size: 48}, Common{LineHeight: 48, ScaleW: 256, ScaleH: 256}, nil)
	if !strings.Contains(out, "base=38.4 ") {
		t.Errorf("expected base=38.4, got:\n%s", out)
	}
}

func TestBuildCharLine(t *testing.T) {
	chars := []CharLine{
		{ID: 65, X: 10, Y: 20, Width: 30, Height: 40, XOffset: 1, YOffset: -2, XAdvance: 32},
	}
	out := Build(Info{Face: "Arial", Size: 48}, Common{LineHeight: 48, ScaleW: 256, ScaleH: 256}, chars)
	want := "char id=65 x=10 y=20 width=30 height=40 xoffset=1 yoffset=-2 xadvance=32 page=0 chnl=15\n"
	if !strings.Contains(out, want) {
		t.Errorf("char line missing, want %q in:\n%s", want, out)
	}
	if !strings.Contains(out, "chars count=1\n") {
		t.Errorf("expected chars count=1, got:\n%s", out)
	}
}

func TestBuildPaddingAndSpacingFields(t *testing.T) {
	out := Build(Info{Face: "Arial", Size: 48, Padding: 3, Spacing: 5}, Common{LineHeight: 48, ScaleW: 256, ScaleH: 256}, nil)
	if !strings.Contains(out, "padding=3,3,3,3 spacing=5,5 ") {
		t.Errorf("unexpected padding/spacing in:\n%s", out)
	}
}
