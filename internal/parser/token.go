// Package parser turns sequence strings such as "file.1001-1005#.exr" into
// their parsed representation.
//
// Parsing is two-phase: a tokenizer slices the string around its range
// tokens, then a state machine checks token order and assembles the result.
// Two grammars exist. The strict grammar admits only the recommended
// "stem.ranges.suffixes" shape; the loose grammar also admits ranges at the
// start or end of the name and non-dot separators.
package parser

import (
	"regexp"
	"strings"
)

// TokenType classifies a slice of a sequence string.
type TokenType int

const (
	// TokenStem is the name portion without separators, ranges, or suffixes.
	TokenStem TokenType = iota
	// TokenPrefix is the single separator character before the ranges.
	TokenPrefix
	// TokenRange is one ranges-plus-pad-format token, such as "1-10#".
	TokenRange
	// TokenInterRange is the literal text between two range tokens.
	TokenInterRange
	// TokenPostfix is the single separator character after the ranges.
	TokenPostfix
	// TokenSuffixes is the joined file extensions, such as ".tar.gz".
	TokenSuffixes
)

func (t TokenType) String() string {
	switch t {
	case TokenStem:
		return "stem"
	case TokenPrefix:
		return "prefix"
	case TokenRange:
		return "range"
	case TokenInterRange:
		return "inter-range"
	case TokenPostfix:
		return "postfix"
	case TokenSuffixes:
		return "suffixes"
	}
	return "unknown"
}

// Token is one classified slice of the sequence string, with its byte
// column so diagnostics can point at it.
type Token struct {
	Type   TokenType
	Value  string
	Column int
}

// EndColumn returns the column one past the token's last byte.
func (t Token) EndColumn() int {
	return t.Column + len(t.Value)
}

const (
	numberPattern = `-?[0-9]+(?:\.[0-9]+)?`
	rangePattern  = numberPattern + `(?:-` + numberPattern + `(?:x[0-9]+(?:\.[0-9]+)?)?)?`
	padPattern    = `#+(?:\.#+)?|<UDIM>|<UVTILE>`
)

// rangesRe matches one full range token: optional comma-joined ranges
// followed by a mandatory pad format.
var rangesRe = regexp.MustCompile(
	`(?:` + rangePattern + `(?:,` + rangePattern + `)*)?(?:` + padPattern + `)`,
)

// padSuffixRe matches the pad format at the end of a range token.
var padSuffixRe = regexp.MustCompile(`(?:` + padPattern + `)$`)

// splitRanges slices seq around every range token. The result alternates
// literal text and range tokens, starting and ending with a literal; either
// boundary literal may be empty. A string with no range token comes back as
// a single element.
func splitRanges(seq string) []string {
	matches := rangesRe.FindAllStringIndex(seq, -1)

	parts := make([]string, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		parts = append(parts, seq[last:m[0]], seq[m[0]:m[1]])
		last = m[1]
	}
	return append(parts, seq[last:])
}

// splitPadFormat splits a range token into its range string and pad format.
// The token is known to match rangesRe, so the pad format is always present.
func splitPadFormat(token string) (rangeStr, padFormat string) {
	padFormat = padSuffixRe.FindString(token)
	return strings.TrimSuffix(token, padFormat), padFormat
}
