package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/dry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { dry.SetLogger(nil) })
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--plain"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "#FF0000", "00FF0080", "tomato")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{
		"#FF0000   r=1.0000 g=0.0000 b=0.0000 a=1.0000",
		"#00FF0080 r=0.0000 g=1.0000 b=0.0000 a=0.5020",
		"#FF6347",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCommandFailure(t *testing.T) {
	out, err := run(t, "parse", "#ABC", "#00FF00")
	if err == nil {
		t.Fatal("parse #ABC: expected error")
	}
	if !strings.Contains(out, "#00FF00") {
		t.Errorf("valid argument not printed:\n%s", out)
	}
}

func TestParseCommandFallback(t *testing.T) {
	out, err := run(t, "parse", "--fallback", "white", "GGHHII")
	if err != nil {
		t.Fatalf("parse with fallback: %v", err)
	}
	if !strings.Contains(out, "#FFFFFF") {
		t.Errorf("fallback not printed:\n%s", out)
	}
}

func TestLerpCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"lerp", "#000000", "#FFFFFF", "0.5"}, "#808080"},
		{[]string{"lerp", "--", "#000000", "#FFFFFF", "-3"}, "#000000"},
		{[]string{"lerp", "#000000", "#FFFFFF", "7"}, "#FFFFFF"},
		{[]string{"lerp", "--space", "linear", "#000000", "#FFFFFF", "0.5"}, "#BCBCBC"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("output = %q, want prefix %q", out, tt.want)
			}
		})
	}
}

func TestLerpCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"lerp", "#000000", "#FFFFFF", "half"},
		{"lerp", "nope", "#FFFFFF", "0.5"},
		{"lerp", "--space", "cmyk", "#000000", "#FFFFFF", "0.5"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestGradientCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.png")
	out, err := run(t, "gradient", "-n", "4", "--width", "8", "--height", "2", "-o", path, "red", "blue")
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("printed %d lines, want 4:\n%s", lines, out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 2 {
		t.Fatalf("image size = %v, want 8x2", b)
	}
	if got := dry.FromColor(img.At(0, 0)).Hex(); got != "#FF0000" {
		t.Errorf("first band = %s, want #FF0000", got)
	}
	if got := dry.FromColor(img.At(7, 1)).Hex(); got != "#0000FF" {
		t.Errorf("last band = %s, want #0000FF", got)
	}
}

func TestGradientCommandTooFewSteps(t *testing.T) {
	if _, err := run(t, "gradient", "-n", "1", "red", "blue"); err == nil {
		t.Error("expected error for --steps 1")
	}
}

func TestPaletteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	data := "name = \"mono\"\n[colors]\nblack = \"#000000\"\nwhite = \"white\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "palette", path)
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if !strings.HasPrefix(out, "mono\n") {
		t.Errorf("palette name not printed first:\n%s", out)
	}
	if strings.Index(out, "black") > strings.Index(out, "white") {
		t.Errorf("entries not sorted:\n%s", out)
	}
}

func TestVerboseLogsFallback(t *testing.T) {
	out, err := run(t, "--verbose", "parse", "--fallback", "black", "zz")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "using fallback") {
		t.Errorf("debug log missing from verbose output:\n%s", out)
	}

	out, err = run(t, "parse", "--fallback", "black", "zz")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "using fallback") {
		t.Errorf("debug log printed without --verbose:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, dry.Version) {
		t.Errorf("version output %q missing %q", out, dry.Version)
	}
}
