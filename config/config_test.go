package config

import (
	"os"
	"path/filepath"
	"testing"
)

var keys = []string{
	"LATIN_FONT", "HANGUL_FONT", "MAP_FILE", "ART_IMAGE", "WINDOW_TITLE", "BANNER",
	"WINDOW_WIDTH", "WINDOW_HEIGHT", "FPS", "BACKEND",
}

// clearEnv: 테스트가 끝나면 원래 값으로 돌아간다
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv("/proj")
	d := Defaults("/proj")
	if c != d {
		t.Errorf("expected defaults %+v, got %+v", d, c)
	}
	if c.Width != 800 || c.Height != 600 || c.FPS != 60 || c.Backend != BackendX11 {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.LatinFont != filepath.Join("/proj", "assets", "bitmap_fonts", "ascii-light.png") {
		t.Errorf("unexpected latin font path %s", c.LatinFont)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("WINDOW_HEIGHT", "-3")
	t.Setenv("FPS", "abc")
	t.Setenv("BACKEND", "Ebiten")
	t.Setenv("BANNER", "한글 ok")

	c := FromEnv("/proj")
	if c.Width != 1024 {
		t.Errorf("expected width 1024, got %d", c.Width)
	}
	if c.Height != 600 || c.FPS != 60 {
		t.Errorf("invalid numbers must fall back, got %d / %d", c.Height, c.FPS)
	}
	if c.Backend != BackendEbiten {
		t.Errorf("expected ebiten backend, got %s", c.Backend)
	}
	if c.Banner != "한글 ok" {
		t.Errorf("unexpected banner %q", c.Banner)
	}

	t.Setenv("BACKEND", "sdl")
	if c := FromEnv("/proj"); c.Backend != BackendX11 {
		t.Errorf("unknown backend must fall back to x11, got %s", c.Backend)
	}
}

func TestFromEnvPathsFollowRoot(t *testing.T) {
	clearEnv(t)
	root := filepath.Join(t.TempDir(), "proj")
	abs := filepath.Join(t.TempDir(), "elsewhere", "latin.png")
	t.Setenv("LATIN_FONT", abs)
	t.Setenv("HANGUL_FONT", "assets/bitmap_fonts/hangul.png")
	t.Setenv("MAP_FILE", "assets/map.txt")
	t.Setenv("ART_IMAGE", "pics/art.jpg")

	c := FromEnv(root)
	if c.LatinFont != abs {
		t.Errorf("absolute path must stay as is, got %s", c.LatinFont)
	}
	if want := filepath.Join(root, "assets", "bitmap_fonts", "hangul.png"); c.HangulFont != want {
		t.Errorf("expected %s, got %s", want, c.HangulFont)
	}
	if want := filepath.Join(root, "assets", "map.txt"); c.MapFile != want {
		t.Errorf("expected %s, got %s", want, c.MapFile)
	}
	if want := filepath.Join(root, "pics", "art.jpg"); c.ArtImage != want {
		t.Errorf("expected %s, got %s", want, c.ArtImage)
	}
}

func TestShippedEnvExampleResolvesUnderRoot(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	example, err := os.ReadFile(filepath.Join("..", ".env.example"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env.example"), example, 0644); err != nil {
		t.Fatal(err)
	}

	LoadEnv(dir)
	if c, d := FromEnv(dir), Defaults(dir); c != d {
		t.Errorf(".env.example must match the defaults under root\n got %+v\nwant %+v", c, d)
	}
}

func TestLoadEnvPriority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(".env.example", "WINDOW_WIDTH=320\n")
	write(".env", "WINDOW_WIDTH=640\nFPS=30\n")
	write(".env.local", "WINDOW_WIDTH=1024\n")

	LoadEnv(dir)
	c := FromEnv(dir)
	if c.Width != 1024 {
		t.Errorf(".env.local must win, got width %d", c.Width)
	}
	// 첫 번째로 찾은 파일만 읽는다
	if c.FPS != 60 {
		t.Errorf("expected FPS default, got %d", c.FPS)
	}
}

func TestLoadEnvCreatesDefault(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	LoadEnv(dir)
	if _, err := os.Stat(filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("expected default .env, got %v", err)
	}
	c := FromEnv(dir)
	if c != Defaults(dir) {
		t.Errorf("expected defaults from generated file, got %+v", c)
	}
}
