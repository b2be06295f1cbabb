package parser

import (
	"strings"

	seqerrors "github.com/jacoelho/pathseq/errors"
	"github.com/jacoelho/pathseq/internal/ast"
)

// Separator sets for the loose grammar. A postfix separator joins the
// ranges to trailing text; a prefix separator additionally admits '.'.
const (
	loosePostfixSeparators = "_"
	loosePrefixSeparators  = "._"
)

// TokenizeLoose slices seq into loose-grammar tokens.
//
// Unlike the strict tokenizer this accepts ranges at the start or end of
// the name, empty inter-range separators, and non-dot text after the
// ranges. Classification of the text around the ranges happens here; the
// state machine only checks ordering.
func TokenizeLoose(seq string) ([]Token, error) {
	raw := splitRanges(seq)

	startsWithRange := raw[0] == ""
	endsWithRange := raw[len(raw)-1] == ""
	if endsWithRange {
		raw = raw[:len(raw)-1]
	}

	column := 0
	var tokens []Token
	for i, rawToken := range raw {
		switch {
		case i == 0:
			tokens = append(tokens, tokenizeLooseHead(rawToken, endsWithRange)...)
		case i%2 == 1:
			tokens = append(tokens, Token{TokenRange, rawToken, column})
		case i != len(raw)-1:
			tokens = append(tokens, Token{TokenInterRange, rawToken, column})
		default:
			tokens = append(tokens, tokenizeLooseTail(rawToken, column, startsWithRange)...)
		}
		column += len(rawToken)
	}

	if !hasRangeToken(tokens) {
		return nil, seqerrors.NewNotASequence(seq)
	}
	return tokens, nil
}

// tokenizeLooseHead classifies the text before the first range token.
func tokenizeLooseHead(rawToken string, endsWithRange bool) []Token {
	if rawToken == "" {
		return nil
	}

	var tokens []Token
	var prefix *Token
	if endsWithRange {
		// The whole name precedes the ranges: split off the trailing
		// separator, then the suffixes, leaving the stem.
		if strings.ContainsAny(rawToken[len(rawToken)-1:], loosePrefixSeparators) {
			prefix = &Token{TokenPrefix, rawToken[len(rawToken)-1:], len(rawToken) - 1}
			rawToken = rawToken[:len(rawToken)-1]
		}

		suffixAt := looseSuffixIndex(rawToken)
		tokens = append(tokens, Token{TokenStem, rawToken[:suffixAt], 0})
		if suffixAt < len(rawToken) {
			tokens = append(tokens, Token{TokenSuffixes, rawToken[suffixAt:], suffixAt})
		}
	} else {
		if rawToken != "." && strings.ContainsAny(rawToken[len(rawToken)-1:], loosePrefixSeparators) {
			prefix = &Token{TokenPrefix, rawToken[len(rawToken)-1:], len(rawToken) - 1}
			rawToken = rawToken[:len(rawToken)-1]
		}
		tokens = append(tokens, Token{TokenStem, rawToken, 0})
	}

	if prefix != nil {
		tokens = append(tokens, *prefix)
	}
	return tokens
}

// tokenizeLooseTail classifies the text after the last range token.
func tokenizeLooseTail(rawToken string, column int, startsWithRange bool) []Token {
	if strings.HasPrefix(rawToken, ".") && !strings.HasSuffix(rawToken, ".") {
		return []Token{{TokenSuffixes, rawToken, column}}
	}

	var tokens []Token
	if startsWithRange {
		// The whole name follows the ranges: an optional postfix separator,
		// then the stem, then the suffixes.
		if strings.ContainsAny(rawToken[:1], loosePostfixSeparators) {
			tokens = append(tokens, Token{TokenPostfix, rawToken[:1], column})
			rawToken = rawToken[1:]
			column++
		}

		suffixAt := looseTailSuffixIndex(rawToken)
		if suffixAt > 0 {
			tokens = append(tokens, Token{TokenStem, rawToken[:suffixAt], column})
		}
		if suffixAt < len(rawToken) {
			tokens = append(tokens, Token{TokenSuffixes, rawToken[suffixAt:], column + suffixAt})
		}
		return tokens
	}

	suffixAt := looseTailSuffixIndex(rawToken)
	if suffixAt > 0 {
		tokens = append(tokens, Token{TokenPostfix, rawToken[:suffixAt], column})
	}
	if suffixAt < len(rawToken) {
		tokens = append(tokens, Token{TokenSuffixes, rawToken[suffixAt:], column + suffixAt})
	}
	return tokens
}

// looseSuffixIndex finds where the suffixes begin in a head fragment. A
// single leading dot belongs to the stem of a hidden file.
func looseSuffixIndex(s string) int {
	from := 0
	if strings.HasPrefix(s, ".") {
		from = 1
	}
	if i := strings.Index(s[from:], "."); i >= 0 {
		return from + i
	}
	return len(s)
}

// looseTailSuffixIndex finds where the suffixes begin in a tail fragment.
// Fragments ending in '.' have no suffixes; fragments starting with '.' are
// all suffixes.
func looseTailSuffixIndex(s string) int {
	switch {
	case strings.HasSuffix(s, "."):
		return len(s)
	case strings.HasPrefix(s, "."):
		return 0
	default:
		if i := strings.Index(s, "."); i >= 0 {
			return i
		}
		return len(s)
	}
}

// looseState is a position in the loose token grammar. The three token
// orders share one machine; the entry token decides which shape is built.
type looseState int

const (
	looseInit looseState = iota

	// Ranges open the name.
	startsRange
	startsInterRange
	startsPostfix
	startsStem
	startsSuffixes

	// A stem was seen; the shape is not yet decided.
	looseStem

	// Ranges sit inside the name.
	inPrefix
	inRange
	inInterRange
	inPostfix
	inSuffixes

	// Suffixes preceded the ranges; ranges close the name.
	endsName
	endsPrefix
	endsRange
	endsInterRange
)

// looseParser accumulates fields while pumping tokens through the grammar.
type looseParser struct {
	seq      string
	state    looseState
	stem     string
	prefix   string
	ranges   []*ast.PaddedRange
	inter    []string
	postfix  string
	suffixes []string
}

// ParseLoose parses seq with the loose grammar, returning one of the three
// loose shapes depending on where the ranges sit.
func ParseLoose(seq string) (ast.Parsed, error) {
	tokens, err := TokenizeLoose(seq)
	if err != nil {
		return nil, err
	}

	p := &looseParser{seq: seq}
	for _, tok := range tokens {
		if err := p.pump(tok); err != nil {
			return nil, err
		}
	}
	return p.finalize()
}

func (p *looseParser) pump(tok Token) error {
	switch p.state {
	case looseInit:
		switch tok.Type {
		case TokenRange:
			p.state = startsRange
			return p.appendRange(tok)
		case TokenStem:
			p.stem = tok.Value
			p.state = looseStem
			return nil
		}
		return expected(p.seq, tok, "Expected a range or a stem")

	case startsRange:
		switch tok.Type {
		case TokenInterRange:
			p.inter = append(p.inter, tok.Value)
			p.state = startsInterRange
			return nil
		case TokenSuffixes:
			// "1-10#.exr" has the in-name shape with an empty stem.
			p.state = inSuffixes
			return p.setSuffixes(tok, false)
		case TokenPostfix:
			p.postfix = tok.Value
			p.state = startsPostfix
			return nil
		case TokenStem:
			p.stem = tok.Value
			p.state = startsStem
			return nil
		}
		return expected(p.seq, tok, "Expected an inter-range string, a prefix separator, or a stem")

	case startsInterRange:
		if tok.Type != TokenRange {
			return expected(p.seq, tok, "Expected the ranges")
		}
		p.state = startsRange
		return p.appendRange(tok)

	case startsPostfix:
		if tok.Type != TokenStem {
			return expected(p.seq, tok, "Expected a stem")
		}
		p.stem = tok.Value
		p.state = startsStem
		return nil

	case startsStem:
		if tok.Type != TokenSuffixes {
			return expected(p.seq, tok, "Expected the file suffixes")
		}
		p.state = startsSuffixes
		return p.setSuffixes(tok, false)

	case looseStem:
		switch tok.Type {
		case TokenPrefix:
			p.prefix = tok.Value
			p.state = inPrefix
			return nil
		case TokenRange:
			p.state = inRange
			return p.appendRange(tok)
		case TokenSuffixes:
			p.state = endsName
			return p.setSuffixes(tok, false)
		}
		return expected(p.seq, tok, "Expected a prefix separator, a range, or file suffixes")

	case inPrefix:
		if tok.Type != TokenRange {
			return expected(p.seq, tok, "Expected the ranges")
		}
		p.state = inRange
		return p.appendRange(tok)

	case inRange:
		switch tok.Type {
		case TokenInterRange:
			p.inter = append(p.inter, tok.Value)
			p.state = inInterRange
			return nil
		case TokenPostfix:
			p.postfix = tok.Value
			p.state = inPostfix
			return nil
		case TokenSuffixes:
			p.state = inSuffixes
			return p.setSuffixes(tok, false)
		}
		return expected(p.seq, tok, "Expected an inter-range string, a postfix, or file suffixes")

	case inInterRange:
		if tok.Type != TokenRange {
			return expected(p.seq, tok, "Expected the ranges")
		}
		p.state = inRange
		return p.appendRange(tok)

	case inPostfix:
		if tok.Type != TokenSuffixes {
			return expected(p.seq, tok, "Expected the file suffixes")
		}
		p.state = inSuffixes
		return p.setSuffixes(tok, false)

	case endsName:
		switch tok.Type {
		case TokenPrefix:
			p.prefix = tok.Value
			p.state = endsPrefix
			return nil
		case TokenRange:
			p.state = endsRange
			return p.appendRange(tok)
		}
		return expected(p.seq, tok, "Expected a prefix separator, or a range")

	case endsPrefix:
		if tok.Type != TokenRange {
			return expected(p.seq, tok, "Expected the ranges")
		}
		p.state = endsRange
		return p.appendRange(tok)

	case endsRange:
		if tok.Type != TokenInterRange {
			return expected(p.seq, tok, "Expected an inter-range string")
		}
		p.inter = append(p.inter, tok.Value)
		p.state = endsInterRange
		return nil

	case endsInterRange:
		if tok.Type != TokenRange {
			return expected(p.seq, tok, "Expected the ranges")
		}
		p.state = endsRange
		return p.appendRange(tok)
	}

	return expected(p.seq, tok, "Unexpected token")
}

func (p *looseParser) appendRange(tok Token) error {
	r, err := parsePaddedRange(p.seq, tok)
	if err != nil {
		return err
	}
	p.ranges = append(p.ranges, r)
	return nil
}

func (p *looseParser) setSuffixes(tok Token, strict bool) error {
	suffixes, err := parseSuffixes(p.seq, tok, strict)
	if err != nil {
		return err
	}
	p.suffixes = suffixes
	return nil
}

// finalize builds the parsed shape for the machine's resting state.
func (p *looseParser) finalize() (ast.Parsed, error) {
	ranges, err := ast.NewRanges(p.ranges, p.inter)
	if err != nil {
		return nil, seqerrors.NewParseSpan(p.seq, 0, len(p.seq), err.Error())
	}

	switch p.state {
	case startsRange, startsStem, startsSuffixes:
		return ast.NewRangeStartsName(ranges, p.postfix, p.stem, p.suffixes), nil
	case inRange, inPostfix, inSuffixes:
		return ast.NewRangeInName(p.stem, p.prefix, ranges, p.postfix, p.suffixes), nil
	case endsRange:
		return ast.NewRangeEndsName(p.stem, p.suffixes, p.prefix, ranges), nil
	}
	return nil, seqerrors.NewParse(p.seq, max(len(p.seq)-1, 0), "Unexpected end of sequence")
}
