// Package modelid extracts comparable version numbers from model identity
// strings. Model IDs encode versions inconsistently ("gpt-4.1", "claude-3-5",
// "gemini-2.0-flash") and mix them with parameter-size suffixes ("70b",
// "8x22b") and date codes ("20240718", "0125") that must not be read as
// versions.
package modelid

import (
	"strconv"
	"strings"
)

// versionScale converts a major.minor version into a single comparable
// integer: "4.5" becomes 450, "4" becomes 400.
const versionScale = 100

// Version returns a comparable version number extracted from a model
// identity string, or 0 when none is extractable.
func Version(id string) int {
	segments := split(id)

	for i, seg := range segments {
		major, minor, ok := parseVersionSegment(seg)
		if !ok {
			continue
		}

		// IDs like "claude-3-5-sonnet" split the version across two
		// segments. Join them only when the first had no minor part.
		if minor == 0 && !strings.Contains(seg, ".") && i+1 < len(segments) {
			if m, rest, ok2 := parseVersionSegment(segments[i+1]); ok2 && rest == 0 {
				minor = m
			}
		}

		return major*versionScale + scaleMinor(minor)
	}

	return 0
}

// split breaks an identity string into candidate segments. Dots are kept
// inside segments so "4.5" survives as one candidate.
func split(id string) []string {
	return strings.FieldsFunc(strings.ToLower(id), func(r rune) bool {
		return r == '-' || r == '/' || r == ':' || r == '_' || r == ' '
	})
}

// parseVersionSegment reports whether a segment looks like a version
// ("4", "4.5", "v2", "4o") rather than a size or date suffix.
func parseVersionSegment(seg string) (major, minor int, ok bool) {
	seg = strings.TrimPrefix(seg, "v")
	if seg == "" {
		return 0, 0, false
	}

	// Parameter-size suffixes: "70b", "8x22b", "1.5b".
	if strings.HasSuffix(seg, "b") || strings.Contains(seg, "x") {
		return 0, 0, false
	}

	// A trailing variant letter ("4o") is not part of the number.
	last := seg[len(seg)-1]
	if last >= 'a' && last <= 'z' {
		seg = seg[:len(seg)-1]
	}

	majorPart, minorPart, hasDot := strings.Cut(seg, ".")

	// Date codes ("20240718", "0125") are long runs of digits; real
	// major versions are at most two digits.
	if len(majorPart) == 0 || len(majorPart) > 2 {
		return 0, 0, false
	}

	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return 0, 0, false
	}

	if hasDot {
		if len(minorPart) == 0 || len(minorPart) > 2 {
			return 0, 0, false
		}
		minor, err = strconv.Atoi(minorPart)
		if err != nil {
			return 0, 0, false
		}
	}

	return major, minor, true
}

// scaleMinor positions the minor part so that "4.5" > "4.45" > "4".
func scaleMinor(minor int) int {
	if minor == 0 {
		return 0
	}
	if minor < 10 {
		return minor * 10
	}
	return minor
}
