package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/chertila/chertila-go/pkg/chertila/models"
)

func TestParse(t *testing.T) {
	pts := []models.Point{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 4}}

	tests := []struct {
		name     string
		input    string
		expected *models.PlotRequest
	}{
		{
			name:     "core only",
			input:    `чертила "T" {X,Y} [1,2 2,3 3,4]`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts},
		},
		{
			name:     "grid",
			input:    `чертила "T" {X,Y} [1,2 2,3 3,4] сетка`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts, Grid: true},
		},
		{
			name:  "margin",
			input: `чертила "T" {X,Y} [1,2 2,3 3,4] погрешность(0.5,0.2)`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts,
				Margin: &models.ErrorMargin{XD: 0.5, YD: 0.2}},
		},
		{
			name:  "zero margin",
			input: `чертила "T" {X,Y} [1,2 2,3 3,4] погрешность(0,0)`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts,
				Margin: &models.ErrorMargin{XD: 0, YD: 0}},
		},
		{
			name:  "margin with leading dots",
			input: `чертила "T" {X,Y} [1,2 2,3 3,4] погрешность(.5,.5)`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts,
				Margin: &models.ErrorMargin{XD: 0.5, YD: 0.5}},
		},
		{
			name:  "usage example",
			input: `чертила "Зависимость скорости" {V(м/c),T(с)} [1,2 2,3 3,4] сетка погрешность(1,1)`,
			expected: &models.PlotRequest{Title: "Зависимость скорости", XLabel: "V(м/c)", YLabel: "T(с)",
				Points: pts, Grid: true, Margin: &models.ErrorMargin{XD: 1, YD: 1}},
		},
		{
			name:     "trimmed title and labels, empty labels",
			input:    `  чертила "  T  " { , } [1,2 2,3 3,4]  `,
			expected: &models.PlotRequest{Title: "T", XLabel: "", YLabel: "", Points: pts},
		},
		{
			name:     "two distinct points",
			input:    `чертила "T" {X,Y} [0,0 2,4]`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: []models.Point{{X: 0, Y: 0}, {X: 2, Y: 4}}},
		},
		{
			name:  "signed and fractional numbers",
			input: `чертила "T" {X,Y} [-1.5,+2 .5,3. 10,-0.25]`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y",
				Points: []models.Point{{X: -1.5, Y: 2}, {X: 0.5, Y: 3}, {X: 10, Y: -0.25}}},
		},
		{
			name:     "keyword inside title is kept",
			input:    `чертила "сетка" {X,Y} [1,2 2,3 3,4]`,
			expected: &models.PlotRequest{Title: "сетка", XLabel: "X", YLabel: "Y", Points: pts},
		},
		{
			name:     "extra spaces between parts",
			input:    `чертила   "T"   {X,Y}   [1,2   2,3 3,4]   сетка`,
			expected: &models.PlotRequest{Title: "T", XLabel: "X", YLabel: "Y", Points: pts, Grid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Parse(%q) = %+v, expected %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseModifierOrder(t *testing.T) {
	a, err := Parse(`чертила "T" {X,Y} [1,2 2,3 3,4] сетка погрешность(1,1)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := Parse(`чертила "T" {X,Y} [1,2 2,3 3,4] погрешность(1,1) сетка`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("modifier order changed result: %+v vs %+v", a, b)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a command", "not a command"},
		{"empty", ""},
		{"keyword only", "чертила"},
		{"missing space after keyword", `чертила"T" {X,Y} [1,2 2,3]`},
		{"missing quotes", `чертила T {X,Y} [1,2 2,3]`},
		{"unterminated title", `чертила "T {X,Y} [1,2 2,3]`},
		{"empty title", `чертила "   " {X,Y} [1,2 2,3]`},
		{"missing braces", `чертила "T" X,Y [1,2 2,3]`},
		{"labels without comma", `чертила "T" {XY} [1,2 2,3]`},
		{"missing brackets", `чертила "T" {X,Y} 1,2 2,3`},
		{"unterminated points", `чертила "T" {X,Y} [1,2 2,3`},
		{"single point", `чертила "T" {X,Y} [1,2]`},
		{"no points", `чертила "T" {X,Y} []`},
		{"non-numeric component", `чертила "T" {X,Y} [1,a 2,3]`},
		{"three components", `чертила "T" {X,Y} [1,2,3 2,3]`},
		{"missing component", `чертила "T" {X,Y} [1 2,3]`},
		{"exponent", `чертила "T" {X,Y} [1e3,2 2,3]`},
		{"thousands separator", `чертила "T" {X,Y} [1_000,2 2,3]`},
		{"decimal comma", `чертила "T" {X,Y} [1;5,2 2,3]`},
		{"infinity", `чертила "T" {X,Y} [Inf,2 2,3]`},
		{"trailing junk", `чертила "T" {X,Y} [1,2 2,3] лишнее`},
		{"glued modifier", `чертила "T" {X,Y} [1,2 2,3]сетка`},
		{"duplicate grid", `чертила "T" {X,Y} [1,2 2,3] сетка сетка`},
		{"duplicate margin", `чертила "T" {X,Y} [1,2 2,3] погрешность(1,1) погрешность(1,1)`},
		{"malformed margin", `чертила "T" {X,Y} [1,2 2,3] погрешность(1,x)`},
		{"negative margin", `чертила "T" {X,Y} [1,2 2,3] погрешность(-1,1)`},
		{"unterminated margin", `чертила "T" {X,Y} [1,2 2,3] погрешность(1,1`},
		{"margin with one value", `чертила "T" {X,Y} [1,2 2,3] погрешность(1)`},
		{"modifier before points", `чертила "T" {X,Y} сетка [1,2 2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, expected error", tt.input, result)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("Parse(%q) error %v (type %T), expected *SyntaxError", tt.input, err, err)
			}
		})
	}
}
