package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/pelletier/go-toml"
)

var ConfDir string

func init() {
	if runtime.GOOS == "windows" {
		ConfDir = fmt.Sprintf("%s/.wlsplice", os.Getenv("USERPROFILE"))
	} else {
		ConfDir = fmt.Sprintf("%s/.wlsplice", os.Getenv("HOME"))
	}
}

func SettingsConfigFile() string {
	if *optSettings != "" {
		return *optSettings
	}
	return fmt.Sprintf("%s/%s", ConfDir, "settings.toml")
}

type Settings struct {
	Output  OutputSettings
	Debug   DebugSettings
	History HistorySettings
}

type OutputSettings struct {
	Format    string
	Separator string
}

type DebugSettings struct {
	MaxEntries int `toml:"max-entries"`
}

type HistorySettings struct {
	Size int
}

var (
	settingsLoadedFromFile bool
	settings               = defaultSettings()
)

func defaultSettings() Settings {
	return Settings{
		Output: OutputSettings{
			Format:    "text",
			Separator: " ",
		},
		Debug: DebugSettings{
			MaxEntries: 100,
		},
		History: HistorySettings{
			Size: 5,
		},
	}
}

func LoadSettingsFromFile(path string, settings *Settings) (err error) {
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		return
	}
	defer func() { mylog.CheckIgnore(f.Close()) }()

	dec := toml.NewDecoder(f)
	return dec.Decode(settings)
}

// LoadSettings reads the settings file, if there is one, and applies the
// command line overrides.
func LoadSettings() {
	path := SettingsConfigFile()
	err := LoadSettingsFromFile(path, &settings)
	switch {
	case errors.Is(err, fs.ErrNotExist) && *optSettings == "":
		log(LogCatgConf, "No settings file %s; using defaults\n", path)
	default:
		mylog.Check(err)
		log(LogCatgConf, "Loaded settings from config file %s\n", path)
		settingsLoadedFromFile = true
	}

	if *optFormat != "" {
		settings.Output.Format = *optFormat
	}
	if *optHistory > 0 {
		settings.History.Size = *optHistory
	}
	log(LogCatgConf, "Settings: %+v\n", settings)
}

func GenerateSampleSettings() string {
	return `# Sample wlsplice settings file
[output]
# Output format: text or csv
#format="text"

# Separator placed between list values
#separator=" "

[debug]
# Number of debug log entries kept per category
#max-entries=100

[history]
# Number of list snapshots printed when a step fails
#size=5
`
}
