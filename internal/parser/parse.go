package parser

import (
	"errors"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/ast"
	"github.com/jacoelho/pathseq/internal/numrange"
)

// parsePaddedRange builds the padded range for one range token. Range string
// errors are re-anchored at the token's position inside seq.
func parsePaddedRange(seq string, tok Token) (*ast.PaddedRange, error) {
	rangeStr, padFormat := splitPadFormat(tok.Value)
	if rangeStr == "" {
		// A bare pad format such as "####" is a pattern with unknown
		// file numbers.
		return ast.NewPaddedRange(nil, padFormat), nil
	}

	nums, err := numrange.ParseCollection(rangeStr)
	if err != nil {
		var parseErr *seqerrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, seqerrors.NewParseSpan(
				seq,
				tok.Column+parseErr.Column,
				tok.Column+parseErr.EndColumn,
				parseErr.Reason,
			)
		}
		return nil, seqerrors.NewParseSpan(seq, tok.Column, tok.EndColumn(), err.Error())
	}
	return ast.NewPaddedRangeLiteral(nums, padFormat, rangeStr), nil
}

// parseSuffixes splits a suffixes token such as ".tar.gz" into its
// extensions. With strict set, an empty extension ("..") is an error.
func parseSuffixes(seq string, tok Token, strict bool) ([]string, error) {
	if tok.Value == "" {
		return nil, nil
	}

	var suffixes []string
	start := 0
	for i := 1; i < len(tok.Value); i++ {
		if tok.Value[i] != '.' {
			continue
		}
		if strict && i-start == 1 && tok.Value[start] == '.' {
			column := tok.Column + i
			return nil, seqerrors.NewParseSpan(seq, column, column+1, "Cannot have an empty file extension")
		}
		suffixes = append(suffixes, tok.Value[start:i])
		start = i
	}
	return append(suffixes, tok.Value[start:]), nil
}

// hasRangeToken reports whether any token is a range.
func hasRangeToken(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Type == TokenRange {
			return true
		}
	}
	return false
}
