// Package parser turns plot command text into a models.PlotRequest.
//
// The accepted form is
//
//	чертила "<title>" {<xlabel>,<ylabel>} [<x1>,<y1> <x2>,<y2> ...] [сетка] [погрешность(<xd>,<yd>)]
//
// Trailing modifiers are optional and may come in any order.
package parser

import (
	"strings"
	"unicode"

	"github.com/chertila/chertila-go/pkg/chertila/models"
)

// Keyword starts every plot command.
const Keyword = "чертила"

// Parse parses a single command line. Any deviation from the grammar is
// reported as a *SyntaxError; there is no partial recovery.
func Parse(text string) (*models.PlotRequest, error) {
	core, mods, err := splitModifiers(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	req, err := parseCore(core)
	if err != nil {
		return nil, err
	}
	req.Grid = mods.grid
	req.Margin = mods.margin

	return req, nil
}

// parseCore matches the mandatory part of the command, anchored at both ends.
func parseCore(core string) (*models.PlotRequest, error) {
	rest, ok := strings.CutPrefix(core, Keyword)
	if !ok {
		return nil, syntaxErrorf("command must start with %q", Keyword)
	}

	rest, err := skipSpace(rest, "title")
	if err != nil {
		return nil, err
	}
	title, rest, err := enclosed(rest, '"', '"', "title")
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, syntaxErrorf("title is empty")
	}

	rest, err = skipSpace(rest, "axis labels")
	if err != nil {
		return nil, err
	}
	labels, rest, err := enclosed(rest, '{', '}', "axis labels")
	if err != nil {
		return nil, err
	}
	xLabel, yLabel, ok := strings.Cut(labels, ",")
	if !ok {
		return nil, syntaxErrorf("axis labels must be separated by a comma")
	}

	rest, err = skipSpace(rest, "points")
	if err != nil {
		return nil, err
	}
	list, rest, err := enclosed(rest, '[', ']', "points")
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, syntaxErrorf("unexpected trailing text %q", rest)
	}

	points, err := parsePoints(list)
	if err != nil {
		return nil, err
	}

	return &models.PlotRequest{
		Title:  title,
		XLabel: strings.TrimSpace(xLabel),
		YLabel: strings.TrimSpace(yLabel),
		Points: points,
	}, nil
}

// parsePoints parses a whitespace separated list of "x,y" pairs.
func parsePoints(list string) ([]models.Point, error) {
	fields := strings.Fields(list)
	if len(fields) < models.MinPoints {
		return nil, syntaxErrorf("need at least %d points, got %d", models.MinPoints, len(fields))
	}

	points := make([]models.Point, 0, len(fields))
	for _, field := range fields {
		x, y, err := parsePair(field, parseNumber)
		if err != nil {
			return nil, err
		}
		points = append(points, models.Point{X: x, Y: y})
	}
	return points, nil
}

// skipSpace requires at least one whitespace rune before the next element.
func skipSpace(s, next string) (string, error) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(trimmed) == len(s) {
		return "", syntaxErrorf("expected space before %s", next)
	}
	return trimmed, nil
}

// enclosed returns the text between opener and the first following closer.
func enclosed(s string, opener, closer byte, what string) (inner, rest string, err error) {
	if s == "" || s[0] != opener {
		return "", "", syntaxErrorf("expected %q before %s", opener, what)
	}
	end := strings.IndexByte(s[1:], closer)
	if end < 0 {
		return "", "", syntaxErrorf("missing %q after %s", closer, what)
	}
	return s[1 : end+1], s[end+2:], nil
}
