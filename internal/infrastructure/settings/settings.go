// Package settings persists player preferences between runs.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Data is the on-disk settings document
type Data struct {
	Muted bool `yaml:"muted"`
}

// File stores settings as YAML at a fixed path.
// It implements port.Settings.
type File struct {
	path string
}

// NewFile creates a settings store backed by path
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// Load reads the settings file. A missing file yields the defaults.
func (f *File) Load() (Data, error) {
	var d Data
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("failed to read settings %s: %w", f.path, err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to parse settings %s: %w", f.path, err)
	}
	return d, nil
}

// Save writes the settings file, creating its directory if needed
func (f *File) Save(d Data) error {
	raw, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", f.path, err)
	}
	return nil
}

// LoadMuted returns the stored mute flag
func (f *File) LoadMuted() (bool, error) {
	d, err := f.Load()
	if err != nil {
		return false, err
	}
	return d.Muted, nil
}

// SaveMuted stores the mute flag, keeping any other settings
func (f *File) SaveMuted(muted bool) error {
	d, err := f.Load()
	if err != nil {
		d = Data{}
	}
	d.Muted = muted
	return f.Save(d)
}

// DefaultPath returns the settings path under the user config dir,
// or a file in the working directory when that is unavailable.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pollo-settings.yaml"
	}
	return filepath.Join(dir, "pollo", "settings.yaml")
}
