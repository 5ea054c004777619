package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/reslink/internal/branding"
	"github.com/agentx-labs/reslink/internal/schema"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Flags use the same names with dashes.
const (
	KeyResourceDir = "resource_dir"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyQuiet       = "quiet"
	KeyRequires    = "requires"
)

const fileType = "yaml"

// Settings are the values that shape a run besides the two positional paths.
type Settings struct {
	ResourceDir string
	LogLevel    string
	LogFile     string
	Quiet       bool
	Requires    string

	// ProjectFile is the settings file that was read, or "" if none existed.
	ProjectFile string
}

// ProjectFileError reports schema issues found in the project file.
type ProjectFileError struct {
	Path   string
	Issues []schema.ValidationIssue
}

func (e *ProjectFileError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("invalid project file %s: %s", e.Path, strings.Join(parts, "; "))
}

// ProjectFilePath returns the path of the optional project file under rootDir.
func ProjectFilePath(rootDir string) string {
	return filepath.Join(rootDir, branding.ProjectFile())
}

// Load resolves Settings with precedence flags > env > project file > defaults.
// Only flags the user actually set override lower layers. flags may be nil.
func Load(rootDir string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyResourceDir, DefaultResourceDir)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyRequires, "")
	for _, key := range []string{KeyResourceDir, KeyLogLevel, KeyLogFile, KeyQuiet, KeyRequires} {
		if err := v.BindEnv(key, branding.EnvVar(key)); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	settings := &Settings{}

	path := ProjectFilePath(rootDir)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		result, err := schema.ValidateFile(path)
		if err != nil {
			return nil, fmt.Errorf("validating project file: %w", err)
		}
		if !result.Valid {
			return nil, &ProjectFileError{Path: path, Issues: result.Issues}
		}
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project file %s: %w", path, err)
		}
		settings.ProjectFile = path
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking project file %s: %w", path, err)
	}

	if flags != nil {
		for _, key := range []string{KeyResourceDir, KeyLogLevel, KeyLogFile, KeyQuiet} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", f.Name, err)
				}
			}
		}
	}

	settings.ResourceDir = v.GetString(KeyResourceDir)
	settings.LogLevel = v.GetString(KeyLogLevel)
	settings.LogFile = v.GetString(KeyLogFile)
	settings.Quiet = v.GetBool(KeyQuiet)
	settings.Requires = v.GetString(KeyRequires)

	if err := ValidateResourceDir(settings.ResourceDir); err != nil {
		return nil, err
	}
	return settings, nil
}
