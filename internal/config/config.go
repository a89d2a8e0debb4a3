package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	XDGName = "txtpad"
)

// Default is used for anything the config file leaves out.
var Default = Config{
	Directory: "~/.txtpad.d",
	Verbosity: 0,
	Watch:     true,
}

type Config struct {
	Directory string `yaml:"directory" validate:"required"`
	LogFile   string `yaml:"logFile,omitempty" validate:""`
	Verbosity int    `yaml:"verbosity" validate:"min=0,max=2"`
	NoColor   bool   `yaml:"noColor" validate:""`
	Watch     bool   `yaml:"watch" validate:""`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(*c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

// Load reads the config at path. An empty path means DefaultPath, and a
// missing default file yields Default.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}
	f, err := os.Open(expanded)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		c := Default
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()
	return NewFromReader(f)
}

// DefaultPath is $XDG_CONFIG_HOME/txtpad/config.yaml.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(fmt.Sprintf("%s/%s", XDGName, "config.yaml"))
}
