package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Profile is the optional TOML configuration file. Command-line flags
// override anything set here.
type Profile struct {
	Wall  WallProfile  `toml:"wall"`
	Cache CacheProfile `toml:"cache"`
	Serve ServeProfile `toml:"serve"`
}

// WallProfile selects wall geometry and the default bond.
type WallProfile struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Bond   string  `toml:"bond"`
}

// CacheProfile configures the layout cache.
type CacheProfile struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// ServeProfile configures serve mode backends.
type ServeProfile struct {
	Addr          string `toml:"addr"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// defaultProfile returns the built-in defaults.
func defaultProfile() Profile {
	return Profile{
		Wall: WallProfile{
			Width:  wall.DefaultWallWidth,
			Height: wall.DefaultWallHeight,
			Bond:   "stretcher",
		},
		Serve: ServeProfile{
			Addr: ":8080",
		},
	}
}

// loadProfile reads the profile from path. An empty path selects the
// default location; a missing file at the default location is not an
// error and yields the defaults.
func loadProfile(path string) (Profile, error) {
	p := defaultProfile()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return p, nil
		}
		path = filepath.Join(dir, "masonry", "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return p, errors.New(errors.ErrCodeInvalidConfig, "config file %s not found", path)
		}
		return p, nil
	}
	if err != nil {
		return p, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	return p, nil
}

// cacheDir returns the layout cache directory, honoring the profile
// override.
func cacheDir(p Profile) (string, error) {
	if p.Cache.Dir != "" {
		return p.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "masonry"), nil
}
