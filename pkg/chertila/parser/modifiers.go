package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chertila/chertila-go/pkg/chertila/models"
)

const (
	// GridKeyword turns on the background grid.
	GridKeyword = "сетка"
	// MarginKeyword introduces an error margin directive: погрешность(xd,yd).
	MarginKeyword = "погрешность"
)

// modifiers holds the optional trailing directives of a command.
type modifiers struct {
	grid   bool
	margin *models.ErrorMargin
}

// splitModifiers peels whitespace-delimited modifier tokens off the end of
// text and returns what is left. Tokens are accepted in any order, at most
// once each. Peeling stops at the first token that is not a modifier, so
// keywords inside the title or labels are left alone.
func splitModifiers(text string) (string, modifiers, error) {
	var mods modifiers
	rest := strings.TrimRightFunc(text, unicode.IsSpace)

	for {
		idx := strings.LastIndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			return rest, mods, nil
		}
		_, size := utf8.DecodeRuneInString(rest[idx:])
		token := rest[idx+size:]

		switch {
		case token == GridKeyword:
			if mods.grid {
				return "", mods, syntaxErrorf("duplicate %s modifier", GridKeyword)
			}
			mods.grid = true
		case strings.HasPrefix(token, MarginKeyword+"("):
			if mods.margin != nil {
				return "", mods, syntaxErrorf("duplicate %s modifier", MarginKeyword)
			}
			margin, err := parseMargin(token)
			if err != nil {
				return "", mods, err
			}
			mods.margin = margin
		default:
			return rest, mods, nil
		}

		rest = strings.TrimRightFunc(rest[:idx], unicode.IsSpace)
	}
}

// parseMargin parses a token of the form погрешность(xd,yd).
func parseMargin(token string) (*models.ErrorMargin, error) {
	body := strings.TrimPrefix(token, MarginKeyword+"(")
	if !strings.HasSuffix(body, ")") {
		return nil, syntaxErrorf("unterminated %s modifier %q", MarginKeyword, token)
	}
	body = strings.TrimSuffix(body, ")")

	xd, yd, err := parsePair(body, parseUnsigned)
	if err != nil {
		return nil, err
	}
	return &models.ErrorMargin{XD: xd, YD: yd}, nil
}
