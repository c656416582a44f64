package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		TreeKey            string `toml:"tree_key"`
		TreeString         string `toml:"tree_string"`
		TreeNumber         string `toml:"tree_number"`
		TreeBool           string `toml:"tree_bool"`
		TreeNull           string `toml:"tree_null"`
		TreeSelectedItem   string `toml:"tree_selected_item"`
		TreeExpandedArrow  string `toml:"tree_expanded_arrow"`
		TreeCollapsedArrow string `toml:"tree_collapsed_arrow"`
		TreeConnector      string `toml:"tree_connector"`
		SearchLabel        string `toml:"search_label"`
		SearchText         string `toml:"search_text"`
		SearchMatch        string `toml:"search_match"`
		SearchResultCount  string `toml:"search_result_count"`
		DiffAdded          string `toml:"diff_added"`
		DiffRemoved        string `toml:"diff_removed"`
		DiffModified       string `toml:"diff_modified"`
		DiffContext        string `toml:"diff_context"`
		DiffHeader         string `toml:"diff_header"`
		StatusMode         string `toml:"status_mode"`
		StatusMessage      string `toml:"status_message"`
		HeaderTitle        string `toml:"header_title"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jsonlens", "themes"))
		paths = append(paths, filepath.Join(home, ".local", "share", "jsonlens", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()

	overrides := []struct {
		value string
		dst   *tcell.Color
	}{
		{config.Colors.TreeKey, &t.Colors.TreeKey},
		{config.Colors.TreeString, &t.Colors.TreeString},
		{config.Colors.TreeNumber, &t.Colors.TreeNumber},
		{config.Colors.TreeBool, &t.Colors.TreeBool},
		{config.Colors.TreeNull, &t.Colors.TreeNull},
		{config.Colors.TreeSelectedItem, &t.Colors.TreeSelectedItem},
		{config.Colors.TreeExpandedArrow, &t.Colors.TreeExpandedArrow},
		{config.Colors.TreeCollapsedArrow, &t.Colors.TreeCollapsedArrow},
		{config.Colors.TreeConnector, &t.Colors.TreeConnector},
		{config.Colors.SearchLabel, &t.Colors.SearchLabel},
		{config.Colors.SearchText, &t.Colors.SearchText},
		{config.Colors.SearchMatch, &t.Colors.SearchMatch},
		{config.Colors.SearchResultCount, &t.Colors.SearchResultCount},
		{config.Colors.DiffAdded, &t.Colors.DiffAdded},
		{config.Colors.DiffRemoved, &t.Colors.DiffRemoved},
		{config.Colors.DiffModified, &t.Colors.DiffModified},
		{config.Colors.DiffContext, &t.Colors.DiffContext},
		{config.Colors.DiffHeader, &t.Colors.DiffHeader},
		{config.Colors.StatusMode, &t.Colors.StatusMode},
		{config.Colors.StatusMessage, &t.Colors.StatusMessage},
		{config.Colors.HeaderTitle, &t.Colors.HeaderTitle},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = ParseColorString(o.value)
		}
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
