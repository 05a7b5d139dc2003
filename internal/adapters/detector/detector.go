// Package detector provides environment detection for progress output selection.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/shrink/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents how build progress is rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty renders progress with the terminal's full colour profile.
	ModePretty
	// ModePlain renders progress with basic ANSI colours for CI logs.
	ModePlain
	// ModeQuiet suppresses per-artifact progress lines.
	ModeQuiet
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModePlain:
		return "plain"
	case ModeQuiet:
		return "quiet"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv)
}

func detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "plain", "ci", "quiet", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "pretty":
		return ModePretty
	case "plain", "ci":
		return ModePlain
	case "quiet":
		return ModeQuiet
	default:
		return autoDetected
	}
}

// ColorProfileFor returns the colour profile selector for mode.
func ColorProfileFor(mode OutputMode) func() termenv.Profile {
	if mode == ModePretty {
		return output.ColorProfile
	}
	return output.ColorProfileANSI
}
