package parser

import (
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/ast"
)

// strictPrefixSeparators are the characters that may separate the stem from
// the ranges in the strict grammar.
const strictPrefixSeparators = "._"

// TokenizeStrict slices seq into strict-grammar tokens.
//
// The strict shape is stem, optional prefix separator, ranges with
// non-empty inter-range separators, then dot-prefixed suffixes. Shapes the
// grammar cannot express fail here with a positioned error.
func TokenizeStrict(seq string) ([]Token, error) {
	raw := splitRanges(seq)
	if len(raw) == 1 {
		return nil, seqerrors.NewNotASequence(seq)
	}

	if strings.HasSuffix(seq, ".") {
		return nil, seqerrors.NewParse(seq, len(seq)-1, "Suffixes cannot end with a '.'")
	}
	if raw[0] == "" {
		return nil, seqerrors.NewParse(seq, 0, "Expected a stem but got a range")
	}
	if raw[len(raw)-1] == "" {
		return nil, seqerrors.NewParse(seq, len(seq), "Expected file suffixes but path ends with a range")
	}

	column := 0
	var tokens []Token
	for i, rawToken := range raw {
		switch {
		case i == 0:
			stem := rawToken
			var prefix *Token
			if stem != "." && strings.ContainsAny(stem[len(stem)-1:], strictPrefixSeparators) {
				prefix = &Token{TokenPrefix, stem[len(stem)-1:], column + len(stem) - 1}
				stem = stem[:len(stem)-1]
			}
			tokens = append(tokens, Token{TokenStem, stem, column})
			if prefix != nil {
				tokens = append(tokens, *prefix)
			}
		case i%2 == 1:
			tokens = append(tokens, Token{TokenRange, rawToken, column})
		case i != len(raw)-1:
			if rawToken == "" {
				return nil, seqerrors.NewParse(seq, column, "Expected a non-empty inter-range separator")
			}
			if rawToken == "." {
				return nil, seqerrors.NewParse(seq, column, "Cannot use '.' as an inter-range separator")
			}
			tokens = append(tokens, Token{TokenInterRange, rawToken, column})
		default:
			if !strings.HasPrefix(rawToken, ".") {
				return nil, seqerrors.NewParse(seq, column, "Expected a '.' to begin file suffixes")
			}
			tokens = append(tokens, Token{TokenSuffixes, rawToken, column})
		}
		column += len(rawToken)
	}

	if !hasRangeToken(tokens) {
		return nil, seqerrors.NewNotASequence(seq)
	}
	return tokens, nil
}

// strictState is a position in the strict token grammar.
type strictState int

const (
	strictStart strictState = iota
	strictStem
	strictPrefix
	strictRange
	strictInterRange
	strictSuffixes
)

// ParseStrict parses seq with the strict grammar.
func ParseStrict(seq string) (*ast.Sequence, error) {
	tokens, err := TokenizeStrict(seq)
	if err != nil {
		return nil, err
	}

	var (
		state    strictState
		stem     string
		prefix   string
		ranges   []*ast.PaddedRange
		inter    []string
		suffixes []string
	)

	for _, tok := range tokens {
		switch state {
		case strictStart:
			if tok.Type != TokenStem {
				return nil, expected(seq, tok, "Expected a stem")
			}
			stem = tok.Value
			state = strictStem

		case strictStem:
			switch tok.Type {
			case TokenPrefix:
				prefix = tok.Value
				state = strictPrefix
			case TokenRange:
				r, err := parsePaddedRange(seq, tok)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, r)
				state = strictRange
			default:
				return nil, expected(seq, tok, "Expected a prefix separator, or the ranges")
			}

		case strictPrefix, strictInterRange:
			if tok.Type != TokenRange {
				return nil, expected(seq, tok, "Expected the ranges")
			}
			r, err := parsePaddedRange(seq, tok)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
			state = strictRange

		case strictRange:
			switch tok.Type {
			case TokenInterRange:
				inter = append(inter, tok.Value)
				state = strictInterRange
			case TokenSuffixes:
				if suffixes, err = parseSuffixes(seq, tok, true); err != nil {
					return nil, err
				}
				state = strictSuffixes
			default:
				return nil, expected(seq, tok, "Expected an inter-range string, or file suffixes")
			}

		case strictSuffixes:
			return nil, expected(seq, tok, "Expected the end of the sequence")
		}
	}

	if state != strictSuffixes {
		return nil, seqerrors.NewParse(seq, len(seq), "Expected file suffixes")
	}

	astRanges, err := ast.NewRanges(ranges, inter)
	if err != nil {
		return nil, seqerrors.NewParseSpan(seq, 0, len(seq), err.Error())
	}
	return ast.NewSequence(stem, prefix, astRanges, suffixes), nil
}

func expected(seq string, tok Token, reason string) error {
	return seqerrors.NewParseSpan(seq, tok.Column, tok.EndColumn(), reason)
}
