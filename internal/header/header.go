// Package header renders the banner printed before the program prompts.
package header

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Style selects the banner decoration.
type Style string

const (
	StyleEmoji Style = "emoji"
	StylePlain Style = "plain"
)

// DefaultTimeFormat renders as dd/MM/yyyy HH:mm:ss.
const DefaultTimeFormat = "02/01/2006 15:04:05"

const rule = "+----------------------------------------"

// Info is what the banner shows.
type Info struct {
	Author     string
	Campus     string
	Repository string
	Time       time.Time
	TimeFormat string
}

type field struct {
	icon  string
	label string
	value string
}

// ParseStyle validates s.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StyleEmoji:
		return StyleEmoji, nil
	case StylePlain:
		return StylePlain, nil
	default:
		return "", fmt.Errorf("unknown header style %q (want emoji or plain)", s)
	}
}

// ResultLabel is the label printed before the first element.
func ResultLabel(style Style) string {
	if style == StylePlain {
		return "El primer elemento del array es: "
	}
	return "🏁 El primer elemento del array es: "
}

// Render writes the banner followed by a blank line.
func Render(w io.Writer, info Info, style Style) error {
	format := info.TimeFormat
	if format == "" {
		format = DefaultTimeFormat
	}

	fields := []field{
		{"👤", "Nombre", info.Author},
		{"🎓", "Campus", info.Campus},
		{"📅", "Fecha y hora", info.Time.Format(format)},
		{"📂", "Repositorio Git", info.Repository},
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if style == StylePlain {
			fmt.Fprintf(&b, "| %s: %s\n", f.label, f.value)
		} else {
			fmt.Fprintf(&b, "| %s %s: %s\n", f.icon, f.label, f.value)
		}
	}
	b.WriteString(rule + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}
