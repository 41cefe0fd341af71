package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme string

const (
	Day   Theme = "day"
	Night Theme = "night"
)

const (
	PropertyDark  = "--color-dark"
	PropertyLight = "--color-light"
)

// RGB triplets in the form CSS custom properties expect them.
const (
	rgbInk   = "10, 10, 20"
	rgbPaper = "255, 255, 255"
)

func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Day:
		return Day, nil
	case Night:
		return Night, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// FromColorScheme picks the starting theme from the client's colour preference.
func FromColorScheme(prefersDark bool) Theme {
	if prefersDark {
		return Night
	}
	return Day
}

// Settings are the two custom-property values written when a theme is applied.
type Settings struct {
	Theme Theme  `json:"theme"`
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

func (t Theme) Settings() Settings {
	if t == Night {
		return Settings{Theme: Night, Dark: rgbPaper, Light: rgbInk}
	}
	return Settings{Theme: Day, Dark: rgbInk, Light: rgbPaper}
}

func (s Settings) Properties() map[string]string {
	return map[string]string{
		PropertyDark:  s.Dark,
		PropertyLight: s.Light,
	}
}
