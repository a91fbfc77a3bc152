package canvas

import (
	"strings"
	"testing"

	"github.com/lokyhark/ray-tracer-challenge/pkg/color"
)

func TestPPMHeader(t *testing.T) {
	c := New(5, 3)
	ppm := c.PPM()
	if !strings.HasPrefix(ppm, "P3\n5 3\n255\n") {
		t.Errorf("header = %q", ppm[:min(len(ppm), 12)])
	}
}

func TestPPMPixelData(t *testing.T) {
	c := New(5, 3)
	c.Set(0, 0, color.New(1.5, 0, 0))
	c.Set(2, 1, color.New(0, 0.5, 0))
	c.Set(4, 2, color.New(-0.5, 0, 1))

	want := "P3\n" +
		"5 3\n" +
		"255\n" +
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255\n"
	if got := c.PPM(); got != want {
		t.Errorf("PPM() = %q, want %q", got, want)
	}
}

func TestPPMLineWrapping(t *testing.T) {
	c := WithColor(10, 2, color.New(1, 0.8, 0.6))

	want := "P3\n" +
		"10 2\n" +
		"255\n" +
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n" +
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n"
	if got := c.PPM(); got != want {
		t.Errorf("PPM() = %q, want %q", got, want)
	}
}

func TestPPMNoLongLines(t *testing.T) {
	c := WithColor(20, 4, color.New(0.73, 0.51, 0.94))
	for i, line := range strings.Split(strings.TrimSuffix(c.PPM(), "\n"), "\n") {
		if len(line) >= 70 {
			t.Errorf("line %d is %d chars: %q", i, len(line), line)
		}
	}
}

func TestPPMEndsWithNewline(t *testing.T) {
	c := New(5, 3)
	if !strings.HasSuffix(c.PPM(), "\n") {
		t.Error("PPM output does not end with a newline")
	}
}
