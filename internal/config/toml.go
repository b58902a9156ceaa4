// Package config provides the built-in theme catalog and its TOML parsing.
package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

//go:embed themes.toml
var embeddedThemes string

// ThemeFile represents a TOML theme catalog.
type ThemeFile struct {
	Themes []ThemeConfig `toml:"theme"`
}

// ThemeConfig maps one theme's role tokens.
type ThemeConfig struct {
	Name      string `toml:"name"`
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Correct   string `toml:"correct"`
	Incorrect string `toml:"incorrect"`
	Neutral   string `toml:"neutral"`
}

// LoadThemes decodes the built-in theme catalog.
func LoadThemes() ([]model.Theme, error) {
	return DecodeThemes(embeddedThemes)
}

// DecodeThemes parses a TOML catalog. Every theme needs a unique name and a
// token for each role; unknown keys are rejected.
func DecodeThemes(data string) ([]model.Theme, error) {
	var file ThemeFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode themes: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if len(file.Themes) == 0 {
		return nil, fmt.Errorf("theme catalog is empty")
	}

	themes := make([]model.Theme, 0, len(file.Themes))
	seen := map[string]struct{}{}
	for i, tc := range file.Themes {
		name := strings.TrimSpace(tc.Name)
		if name == "" {
			return nil, fmt.Errorf("theme %d has no name", i+1)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate theme %q", name)
		}
		seen[name] = struct{}{}
		theme := model.Theme{
			Name: name,
			Tokens: map[model.Role]string{
				model.RolePrimary:   tc.Primary,
				model.RoleSecondary: tc.Secondary,
				model.RoleCorrect:   tc.Correct,
				model.RoleIncorrect: tc.Incorrect,
				model.RoleNeutral:   tc.Neutral,
			},
		}
		for _, role := range model.Roles {
			if theme.Token(role) == "" {
				return nil, fmt.Errorf("theme %q is missing a %s token", name, role)
			}
		}
		themes = append(themes, theme)
	}
	return themes, nil
}
