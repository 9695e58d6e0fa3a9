package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"shoe-store/models"
)

// ThemeStore holds the active card theme. The theme file may be edited
// while the server runs; readers always see a complete, validated theme.
type ThemeStore struct {
	mu    sync.RWMutex
	theme models.Theme
	viper *viper.Viper
}

func NewThemeStore(theme models.Theme) *ThemeStore {
	return &ThemeStore{theme: theme}
}

// LoadTheme reads the theme file at path. A missing file falls back to
// the default theme.
func LoadTheme(path string) (*ThemeStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[theme] %s not found, using default theme", path)
		return NewThemeStore(models.DefaultTheme()), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	theme, err := decodeTheme(v)
	if err != nil {
		return nil, err
	}

	log.Printf("[theme] loaded %s", path)
	return &ThemeStore{theme: theme, viper: v}, nil
}

// LoadThemeFromReader parses a theme document of the given type (yaml, json, toml).
func LoadThemeFromReader(r io.Reader, configType string) (models.Theme, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return models.Theme{}, fmt.Errorf("failed to read theme: %w", err)
	}
	return decodeTheme(v)
}

// decodeTheme overlays the document on the default theme, so a file only
// needs the values it changes.
func decodeTheme(v *viper.Viper) (models.Theme, error) {
	theme := models.DefaultTheme()
	if err := v.Unmarshal(&theme); err != nil {
		return models.Theme{}, fmt.Errorf("failed to unmarshal theme: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return models.Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	return theme, nil
}

func (s *ThemeStore) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *ThemeStore) Set(theme models.Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

// EnableHotReload watches the theme file. An invalid edit is logged and
// the previous theme stays active.
func (s *ThemeStore) EnableHotReload() {
	if s.viper == nil {
		return
	}
	s.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("[theme] file changed: %s", e.Name)

		theme, err := decodeTheme(s.viper)
		if err != nil {
			log.Printf("[theme] reload rejected: %v", err)
			return
		}
		if err := s.Set(theme); err != nil {
			log.Printf("[theme] reload rejected: %v", err)
		}
	})
	s.viper.WatchConfig()
}
