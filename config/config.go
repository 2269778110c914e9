// Package config: .env 계열 파일에서 실행 설정을 읽는다.
package config

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend: 화면 백엔드 종류
const (
	BackendX11    = "x11"
	BackendEbiten = "ebiten"
)

// Config: 실행 설정
type Config struct {
	LatinFont  string
	HangulFont string
	MapFile    string
	ArtImage   string
	Title      string
	Banner     string
	Width      int
	Height     int
	FPS        int
	Backend    string
}

// Defaults: 환경변수가 없을 때 쓰는 값
func Defaults(root string) Config {
	return Config{
		LatinFont:  filepath.Join(root, "assets", "bitmap_fonts", "ascii-light.png"),
		HangulFont: filepath.Join(root, "assets", "bitmap_fonts", "hangul-dkby-dinaru-2.png"),
		MapFile:    filepath.Join(root, "assets", "map.txt"),
		ArtImage:   filepath.Join(root, "assets", "tie.jpg"),
		Title:      "GFX",
		Banner:     "This text. 다람쥐쳇바퀴돌리고파힣",
		Width:      800,
		Height:     600,
		FPS:        60,
		Backend:    BackendX11,
	}
}

// GetProjectRoot: Git 루트 디렉토리, 없으면 현재 디렉토리
func GetProjectRoot() string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		currentDir, err := os.Getwd()
		if err != nil {
			log.Fatal("현재 디렉토리를 확인할 수 없습니다.")
		}
		log.Printf("현재 작업 디렉토리를 프로젝트 루트로 사용합니다: %s", currentDir)
		return currentDir
	}
	return strings.TrimSpace(string(output))
}

// Load: 프로젝트 루트의 환경 파일을 읽고 Config를 만든다.
func Load() Config {
	root := GetProjectRoot()
	LoadEnv(root)
	return FromEnv(root)
}

// LoadEnv: 우선순위 .env.local > .env > .env.example
// 아무것도 없으면 기본 .env를 만든다.
func LoadEnv(root string) {
	for _, name := range []string{".env.local", ".env", ".env.example"} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("⚠️ %s 파일 로드 오류: %v", name, err)
			continue
		}
		log.Printf("✅ %s 로드 완료", name)
		return
	}

	log.Println("⚠️ 환경변수 파일을 찾을 수 없습니다. 기본 .env 파일을 생성합니다.")
	createDefaultEnvFile(filepath.Join(root, ".env"), Defaults(root))
}

// createDefaultEnvFile: 기본 환경변수 파일 생성 후 로드
func createDefaultEnvFile(path string, d Config) {
	env := map[string]string{
		"LATIN_FONT":    d.LatinFont,
		"HANGUL_FONT":   d.HangulFont,
		"MAP_FILE":      d.MapFile,
		"ART_IMAGE":     d.ArtImage,
		"WINDOW_TITLE":  d.Title,
		"WINDOW_WIDTH":  strconv.Itoa(d.Width),
		"WINDOW_HEIGHT": strconv.Itoa(d.Height),
		"FPS":           strconv.Itoa(d.FPS),
		"BACKEND":       d.Backend,
	}
	if err := godotenv.Write(env, path); err != nil {
		log.Printf("⚠️ 기본 .env 파일 생성 실패: %v", err)
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("⚠️ 생성된 .env 파일 로드 실패: %v", err)
		return
	}
	log.Println("✅ 기본 .env 파일 생성 및 로드 완료")
}

// FromEnv: 환경변수 → Config. 비어 있거나 잘못된 값은 기본값.
// 상대 경로는 작업 디렉토리가 아니라 root 기준이다.
func FromEnv(root string) Config {
	c := Defaults(root)
	c.LatinFont = getPath(root, "LATIN_FONT", c.LatinFont)
	c.HangulFont = getPath(root, "HANGUL_FONT", c.HangulFont)
	c.MapFile = getPath(root, "MAP_FILE", c.MapFile)
	c.ArtImage = getPath(root, "ART_IMAGE", c.ArtImage)
	c.Title = getString("WINDOW_TITLE", c.Title)
	c.Banner = getString("BANNER", c.Banner)
	c.Width = getInt("WINDOW_WIDTH", c.Width)
	c.Height = getInt("WINDOW_HEIGHT", c.Height)
	c.FPS = getInt("FPS", c.FPS)

	switch backend := strings.ToLower(getString("BACKEND", c.Backend)); backend {
	case BackendX11, BackendEbiten:
		c.Backend = backend
	default:
		log.Printf("⚠️ 알 수 없는 BACKEND %q, %s 사용", backend, c.Backend)
	}
	return c
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getPath: 상대 경로면 root에 붙인다
func getPath(root, key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if filepath.IsAbs(v) {
		return v
	}
	return filepath.Join(root, v)
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q 가 올바르지 않습니다. 기본값을 사용합니다: %d", key, v, def)
		return def
	}
	return n
}
