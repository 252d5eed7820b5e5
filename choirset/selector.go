package choirset

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Mic identifies one of the close-up microphones used per singer.
type Mic string

const (
	MicDyn Mic = "dyn" // dynamic microphone
	MicHsm Mic = "hsm" // headset microphone
	MicLrx Mic = "lrx" // larynx microphone
)

// Mics returns all recognized microphone identifiers.
func Mics() []Mic {
	return []Mic{MicDyn, MicHsm, MicLrx}
}

func (m Mic) valid() bool {
	return m == MicDyn || m == MicHsm || m == MicLrx
}

// ParseMic converts a string into a Mic, case-insensitively.
func ParseMic(s string) (Mic, error) {
	mic := Mic(strings.ToLower(s))
	if !mic.valid() {
		return "", fmt.Errorf("mic %q is not one of dyn, hsm, lrx%s: %w", s, suggest(s, []string{"dyn", "hsm", "lrx"}), ErrInvalidArgument)
	}
	return mic, nil
}

// AnnSource identifies how a pitch trajectory was produced.
type AnnSource string

const (
	AnnCrepe  AnnSource = "crepe"  // CREPE estimates
	AnnPyin   AnnSource = "pyin"   // pYIN estimates
	AnnManual AnnSource = "manual" // manually corrected
)

// AnnSources returns all recognized pitch annotation sources.
func AnnSources() []AnnSource {
	return []AnnSource{AnnCrepe, AnnPyin, AnnManual}
}

func (a AnnSource) valid() bool {
	return a == AnnCrepe || a == AnnPyin || a == AnnManual
}

// ParseAnnSource converts a string into an AnnSource, case-insensitively.
func ParseAnnSource(s string) (AnnSource, error) {
	src := AnnSource(strings.ToLower(s))
	if !src.valid() {
		return "", fmt.Errorf("annotation source %q is not one of crepe, pyin, manual%s: %w", s, suggest(s, []string{"crepe", "pyin", "manual"}), ErrInvalidArgument)
	}
	return src, nil
}

const maxSuggestionDistance = 3

// suggest returns a " (did you mean ...?)" hint when the input is a near
// miss for one of the options, or an empty string.
func suggest(input string, options []string) string {
	input = strings.ToLower(input)

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, option := range options {
		if distance := levenshtein.ComputeDistance(input, option); distance < bestDistance {
			best = option
			bestDistance = distance
		}
	}

	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// resolvePath filters candidates to the single path containing token as a
// substring. Zero matches and multiple matches are distinct failures; the
// first match is never picked silently.
func resolvePath(candidates []string, token string) (string, error) {
	var matches []string
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), token) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no path matches %q: %w", token, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d paths match %q: %w", len(matches), token, ErrAmbiguousMatch)
	}
}
