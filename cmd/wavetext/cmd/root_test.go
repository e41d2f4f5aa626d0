package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wavetest "github.com/go-drift/wavetext/pkg/testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wavetext.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestExecute_Version(t *testing.T) {
	out := captureStdout(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "wavetext version "+Version) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExecute_Help(t *testing.T) {
	out := captureStdout(t)
	if err := execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"window", "term", "render", "trace"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %q", name)
		}
	}
}

func TestExecute_CommandHelp(t *testing.T) {
	out := captureStdout(t)
	if err := execute([]string{"render", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "wavetext render [--ticks N]") {
		t.Errorf("unexpected command help %q", out)
	}
}

func TestExecute_Errors(t *testing.T) {
	captureStdout(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"bogus"}},
		{"config without dir", []string{"trace", "--config"}},
		{"bad ticks", []string{"trace", "--ticks", "many"}},
		{"unknown flag", []string{"trace", "--loud"}},
		{"trace out", []string{"trace", "--out", "x.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(tt.args); err == nil {
				t.Errorf("execute(%q) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseHeadless(t *testing.T) {
	opts, err := parseHeadless("render", []string{"--ticks", "12", "-o", "a.png", "--text", "", "--json"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.ticks != 12 || opts.out != "a.png" || opts.text == nil || *opts.text != "" || !opts.json {
		t.Errorf("unexpected options %+v", opts)
	}

	opts, err = parseHeadless("render", nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.ticks != 30 || opts.text != nil {
		t.Errorf("unexpected defaults %+v", opts)
	}

	if _, err := parseHeadless("render", []string{"--ticks", "-1"}); err == nil {
		t.Error("expected error for negative ticks")
	}
}

func TestTrace_Table(t *testing.T) {
	out := captureStdout(t)
	dir := writeConfig(t, "text: hello\ntext_size: 10\n")
	if err := execute([]string{"--config", dir, "trace", "--ticks", "2"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", out)
	}
	if lines[0] != `text "hello" baseline 10.0 sizes 5..15` {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "10  15  13   7   5") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestTrace_JSON(t *testing.T) {
	out := captureStdout(t)
	dir := writeConfig(t, "text: abc\n")
	if err := execute([]string{"--config=" + dir, "trace", "--ticks", "4", "--json"}); err != nil {
		t.Fatal(err)
	}
	var snap wavetest.Snapshot
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if snap.Text != "abc" || len(snap.Frames) != 4 || len(snap.Frames[3].Sizes) != 3 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestTrace_EmptyText(t *testing.T) {
	out := captureStdout(t)
	dir := writeConfig(t, "text: \"\"\n")
	if err := execute([]string{"--config", dir, "trace"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "nothing to animate") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRender_WritesPNG(t *testing.T) {
	captureStdout(t)
	dir := writeConfig(t, "text: wave\ntext_size: 24\n")
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := execute([]string{"--config", dir, "render", "--ticks", "5", "--out", path}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() <= 2*renderPadding || img.Bounds().Dy() <= 2*renderPadding {
		t.Errorf("image too small: %v", img.Bounds())
	}
}

func TestRender_BadConfig(t *testing.T) {
	captureStdout(t)
	dir := writeConfig(t, "version: v9.0.0\n")
	err := execute([]string{"--config", dir, "render", "--out", filepath.Join(t.TempDir(), "x.png")})
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestRender_UsesConfiguredBackground(t *testing.T) {
	captureStdout(t)
	dir := writeConfig(t, "text: ab\nbackground: '#204060'\n")
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := execute([]string{"--config", dir, "render", "--ticks", "1", "--out", path}); err != nil {
		t.Fatal(err)
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
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x20 || g>>8 != 0x40 || b>>8 != 0x60 || a>>8 != 0xFF {
		t.Errorf("corner pixel = %x %x %x %x, want 20 40 60 ff", r>>8, g>>8, b>>8, a>>8)
	}
}
