// Package config loads the optional settings file that supplies
// defaults for the command line.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml"
)

var ConfDir string

func init() {
	if runtime.GOOS == "windows" {
		ConfDir = fmt.Sprintf("%s/.addressfmt", os.Getenv("USERPROFILE"))
	} else {
		ConfDir = fmt.Sprintf("%s/.addressfmt", os.Getenv("HOME"))
	}
}

type Settings struct {
	Font  FontSettings
	Split SplitSettings
}

type FontSettings struct {
	Name string
	Size int
	DPI  float64 `toml:"dpi"`
}

type SplitSettings struct {
	WidthCm   float64 `toml:"width-cm"`
	Delimiter string
}

func SettingsConfigFile() string {
	return fmt.Sprintf("%s/%s", ConfDir, "settings.toml")
}

// LoadSettingsFromConfigFile fills settings from the config file,
// leaving it untouched when no file exists.
func LoadSettingsFromConfigFile(settings *Settings) error {
	return LoadSettingsFromFile(SettingsConfigFile(), settings)
}

func LoadSettingsFromFile(path string, settings *Settings) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening settings file %s: %w", path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	if err := dec.Decode(settings); err != nil {
		return fmt.Errorf("decoding settings file %s: %w", path, err)
	}
	return nil
}

func GenerateSampleSettings() string {
	return `# Sample addressfmt settings file
[font]
# Font used to measure line widths. Either a name searched for in the
# system font directories, or a path to a .ttf/.otf file.
# The default is "arial"
#name="arial"

# Font size in points.
# The default is 12
#size=12

# Dots per inch used to convert centimeters to pixels.
# Use 96 for screen output and 300 for print. The default is 96
#dpi=96

[split]
# Maximum line width in centimeters. When unset, the width is asked for
# interactively.
#width-cm=4.0

# The delimiter between address components.
# The default is ", "
#delimiter=", "
`
}
