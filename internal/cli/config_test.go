package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

func TestLoadProfileDefaults(t *testing.T) {
	p, err := loadProfile("")
	if err != nil {
		t.Fatalf("loadProfile error: %v", err)
	}
	if p.Wall.Width != wall.DefaultWallWidth {
		t.Errorf("default width = %.1f", p.Wall.Width)
	}
	if p.Wall.Bond != "stretcher" {
		t.Errorf("default bond = %q", p.Wall.Bond)
	}
	if p.Serve.Addr != ":8080" {
		t.Errorf("default addr = %q", p.Serve.Addr)
	}
}

func TestLoadProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[wall]
width = 1800.0
height = 1500.0
bond = "wild"

[cache]
disabled = true

[serve]
addr = ":9090"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile error: %v", err)
	}
	if p.Wall.Width != 1800 || p.Wall.Height != 1500 {
		t.Errorf("wall = %.0fx%.0f", p.Wall.Width, p.Wall.Height)
	}
	if p.Wall.Bond != "wild" {
		t.Errorf("bond = %q", p.Wall.Bond)
	}
	if !p.Cache.Disabled {
		t.Error("cache should be disabled")
	}
	if p.Serve.Addr != ":9090" || p.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("serve = %+v", p.Serve)
	}
}

func TestLoadProfilePartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wall]\nbond = \"english_cross\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile error: %v", err)
	}
	if p.Wall.Bond != "english_cross" {
		t.Errorf("bond = %q", p.Wall.Bond)
	}
	if p.Wall.Width != wall.DefaultWallWidth {
		t.Errorf("unset width should keep default, got %.1f", p.Wall.Width)
	}
}

func TestLoadProfileMissingExplicitFile(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("explicit missing config should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v", errors.GetCode(err))
	}
}

func TestLoadProfileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("wall = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProfile(path); err == nil {
		t.Fatal("invalid TOML should fail")
	}
}

func TestWallOptsResolve(t *testing.T) {
	p := defaultProfile()
	p.Wall.Bond = "wild"
	p.Cache.Disabled = true

	got := wallOpts{width: 1200}.resolve(p)
	if got.width != 1200 {
		t.Errorf("flag width should win, got %.1f", got.width)
	}
	if got.height != wall.DefaultWallHeight {
		t.Errorf("unset height should come from profile, got %.1f", got.height)
	}
	if got.bond != "wild" {
		t.Errorf("unset bond should come from profile, got %q", got.bond)
	}
	if !got.noCache {
		t.Error("profile cache.disabled should force noCache")
	}
}
