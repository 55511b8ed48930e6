// Package term decides how much color the attached terminal can take.
package term

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// knownTerms pins the profile for TERM values seen in the wild.
// Anything else falls through to the suffix rules in Detect.
var knownTerms = map[string]termenv.Profile{
	"xterm":           termenv.ANSI,
	"xterm-256color":  termenv.ANSI256,
	"screen":          termenv.ANSI,
	"screen-256color": termenv.ANSI256,
	"tmux":            termenv.ANSI256,
	"tmux-256color":   termenv.ANSI256,
	"linux":           termenv.ANSI,
	"vt100":           termenv.ANSI,
	"xterm-kitty":     termenv.TrueColor,
	"xterm-ghostty":   termenv.TrueColor,
	"wezterm":         termenv.TrueColor,
	"alacritty":       termenv.TrueColor,
	"dumb":            termenv.Ascii,
}

// Detect resolves the color profile from the environment and the
// stdout TTY state. getenv is injectable for tests; nil reads nothing.
//
// NO_COLOR always wins. Without a TTY the output stays plain unless
// CLICOLOR_FORCE insists, then COLORTERM and TERM settle the depth.
func Detect(getenv func(string) string, tty bool) termenv.Profile {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !tty && !forceColor(getenv("CLICOLOR_FORCE")) {
		return termenv.Ascii
	}

	switch strings.ToLower(strings.TrimSpace(getenv("COLORTERM"))) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}

	term := strings.ToLower(strings.TrimSpace(getenv("TERM")))
	if profile, ok := knownTerms[term]; ok {
		return profile
	}
	switch {
	case term == "":
		return termenv.Ascii
	case strings.HasSuffix(term, "-256color"):
		return termenv.ANSI256
	case strings.HasSuffix(term, "-truecolor"), strings.HasSuffix(term, "-direct"):
		return termenv.TrueColor
	default:
		return termenv.ANSI
	}
}

// forceColor follows the CLICOLOR_FORCE convention: empty means no,
// everything else means yes except an explicit false.
func forceColor(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	force, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return force
}

// StdoutIsTTY reports whether stdout is attached to a terminal,
// counting Cygwin and MSYS pipes as terminals.
func StdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
