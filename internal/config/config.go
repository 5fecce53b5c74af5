// Package config reads server settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
)

// Config is everything the serve and preview commands need.
type Config struct {
	Port         string `validate:"required,numeric"`
	ContentPath  string
	AssetsDir    string `validate:"required"`
	SiteName     string `validate:"required"`
	ContactEmail string `validate:"omitempty,email"`
	GinMode      string `validate:"omitempty,oneof=debug release test"`
	CubeFPS      int    `validate:"min=1,max=240"`
	Watch        bool
}

var validate = validator.New()

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		Port:      "8080",
		AssetsDir: "./assets",
		SiteName:  "John Doe",
		CubeFPS:   60,
	}
}

// FromEnv overlays environment variables on the defaults.
func FromEnv() (cfg Config, err error) {
	cfg = Defaults()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("CONTENT_PATH"); v != "" {
		cfg.ContentPath = v
	}
	if v := os.Getenv("ASSETS_DIR"); v != "" {
		cfg.AssetsDir = v
	}
	if v := os.Getenv("SITE_NAME"); v != "" {
		cfg.SiteName = v
	}
	if v := os.Getenv("CONTACT_EMAIL"); v != "" {
		cfg.ContactEmail = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := os.Getenv("CUBE_FPS"); v != "" {
		cfg.CubeFPS, err = strconv.Atoi(v)
		if err != nil {
			err = errors.Wrapf(err, "invalid CUBE_FPS %q", v)
			return cfg, err
		}
	}

	return cfg, nil
}

// Validate checks the settings once flags and environment are merged.
func (c *Config) Validate() (err error) {
	err = validate.Struct(c)
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
	}
	return err
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
