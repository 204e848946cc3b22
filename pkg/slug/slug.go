// Copyright (c) 2026 Folium. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as human-readable identifiers for blog posts (e.g.,
// "shipping-a-portfolio-in-a-weekend"). This package handles normalization,
// accent removal, character sanitization, and collision probing.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// ExistsFunc reports whether a candidate slug is already taken.
//
// Callers supply it so that the record being updated can be excluded —
// a record colliding with its own slug is not a collision.
type ExistsFunc func(candidate string) (bool, error)

// Unique resolves a candidate slug to a free one by deterministic probing.
//
// If the candidate is free it is returned unchanged; otherwise "candidate-2",
// "candidate-3", … are probed in order until a free value is found.
func Unique(candidate string, exists ExistsFunc) (string, error) {
	taken, err := exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	for n := 2; ; n++ {
		probe := fmt.Sprintf("%s-%d", candidate, n)
		taken, err := exists(probe)
		if err != nil {
			return "", err
		}
		if !taken {
			return probe, nil
		}
	}
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
