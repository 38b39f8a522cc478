package chertila

import (
	"errors"

	"github.com/chertila/chertila-go/pkg/chertila/export"
	"github.com/chertila/chertila-go/pkg/chertila/fit"
	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/chertila/chertila-go/pkg/chertila/parser"
	"github.com/chertila/chertila-go/pkg/chertila/render"
)

// Parse turns a command line into a plot request.
func Parse(text string) (*models.PlotRequest, error) {
	req, err := parser.Parse(text)
	if err != nil {
		reason := err.Error()
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			reason = syntaxErr.Reason
		}
		return nil, &ParseError{Reason: reason, Err: err}
	}
	return req, nil
}

// Fit computes the least squares line through the request's points.
func Fit(req *models.PlotRequest) (models.FitResult, error) {
	f, err := fit.Linear(req.Points)
	if err != nil {
		if errors.Is(err, fit.ErrDegenerate) || errors.Is(err, fit.ErrTooFewPoints) {
			return models.FitResult{}, &DegenerateFitError{Points: len(req.Points), Err: err}
		}
		if errors.Is(err, fit.ErrOutOfRange) {
			return models.FitResult{}, &RangeError{Points: len(req.Points), Err: err}
		}
		return models.FitResult{}, err
	}
	return f, nil
}

// Render fits a line to req and draws it. The image is returned in memory;
// nothing is written to disk.
func Render(req *models.PlotRequest, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := Fit(req)
	if err != nil {
		return nil, err
	}

	img, err := render.Draw(req, f, opts.renderConfig())
	if err != nil {
		return nil, &RenderError{Stage: "draw", Err: err}
	}
	return img, nil
}

// Plot parses text and renders it in one step.
func Plot(text string, opts Options) ([]byte, error) {
	req, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Render(req, opts)
}

// Export fits a line to req and returns an XLSX workbook holding the data,
// the fit summary and a native scatter chart.
func Export(req *models.PlotRequest) ([]byte, error) {
	f, err := Fit(req)
	if err != nil {
		return nil, err
	}

	data, err := export.Workbook(req, f)
	if err != nil {
		return nil, &RenderError{Stage: "export", Err: err}
	}
	return data, nil
}
