// Package validation checks externally supplied content (config files, star
// map data, mission catalogs) before the simulation trusts it.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Content limits
const (
	MaxSystemIDLen    = 32
	MaxDisplayNameLen = 64
	MaxDescriptionLen = 256
	MaxThreatLevel    = 10
	MaxRewardDollars  = 100000
	MaxRewardMissiles = 20
)

var (
	// Lowercase slugs such as "alpha-centauri"
	validSystemID = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

	// Names may quote nicknames: Thanaia "Black Widow" Volt, Barnard's Star
	validDisplayNameChars = regexp.MustCompile(`^[\p{L}\p{N}\s\-_.'"()]+$`)
)

// ValidateSystemID checks a star system identifier
func ValidateSystemID(id string) error {
	if id == "" {
		return fmt.Errorf("system id cannot be empty")
	}
	if len(id) > MaxSystemIDLen {
		return fmt.Errorf("system id too long: %d characters (max %d)", len(id), MaxSystemIDLen)
	}
	if !validSystemID.MatchString(id) {
		return fmt.Errorf("invalid system id %q (lowercase letters, digits and hyphens only)", id)
	}
	return nil
}

// ValidateDisplayName validates and trims a human-readable name
func ValidateDisplayName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("name contains invalid UTF-8 characters")
	}
	if n := utf8.RuneCountInString(name); n > MaxDisplayNameLen {
		return "", fmt.Errorf("name too long: %d characters (max %d)", n, MaxDisplayNameLen)
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("name contains control characters")
		}
	}

	if !validDisplayNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("name %q contains invalid characters", trimmed)
	}

	return trimmed, nil
}

// ValidateDescription trims a free-text description and strips control
// characters other than newlines and tabs. Empty descriptions are allowed.
func ValidateDescription(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("description contains invalid UTF-8 characters")
	}
	if n := utf8.RuneCountInString(text); n > MaxDescriptionLen {
		return "", fmt.Errorf("description too long: %d characters (max %d)", n, MaxDescriptionLen)
	}

	filtered := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	return filtered, nil
}

// ValidateThreatLevel checks a system's threat level
func ValidateThreatLevel(level int) error {
	if level < 1 || level > MaxThreatLevel {
		return fmt.Errorf("invalid threat level: %d (must be 1-%d)", level, MaxThreatLevel)
	}
	return nil
}

// ValidateReward checks a mission reward
func ValidateReward(dollars, missiles int) error {
	if dollars < 0 || dollars > MaxRewardDollars {
		return fmt.Errorf("invalid reward dollars: %d (must be 0-%d)", dollars, MaxRewardDollars)
	}
	if missiles < 0 || missiles > MaxRewardMissiles {
		return fmt.Errorf("invalid reward missiles: %d (must be 0-%d)", missiles, MaxRewardMissiles)
	}
	return nil
}

// ValidateFraction checks a value in [0, 1], such as a volume
func ValidateFraction(name string, v float64) error {
	if v < 0 || v > 1 || v != v {
		return fmt.Errorf("invalid %s: %v (must be between 0 and 1)", name, v)
	}
	return nil
}
