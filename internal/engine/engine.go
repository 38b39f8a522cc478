// Package engine turns command text into user-facing replies. It bounds
// the number of concurrent renders and keeps internal error detail out of
// the replies.
package engine

import (
	"context"
	"runtime"

	"github.com/chertila/chertila-go/pkg/chertila"
	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// InternalMessage is shown for failures that are not the user's fault.
const InternalMessage = "Не удалось построить график, попробуйте ещё раз."

// ErrInternal marks a recovered panic.
var ErrInternal = errors.New("internal render failure")

// Reply is the answer to one command: an image or a text message.
type Reply struct {
	Image       []byte
	ContentType string
	Text        string
	// Err is the underlying error for logging; never shown to users.
	Err error
}

// OK reports whether the reply carries an image.
func (r Reply) OK() bool {
	return r.Err == nil
}

// Engine parses and renders commands with at most Workers renders in flight.
type Engine struct {
	opts chertila.Options
	sem  *semaphore.Weighted
	log  *zap.Logger
}

// New creates an Engine. workers <= 0 uses the number of CPUs.
func New(opts chertila.Options, workers int, log *zap.Logger) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		opts: opts,
		sem:  semaphore.NewWeighted(int64(workers)),
		log:  log,
	}
}

// Options returns the render options in use.
func (e *Engine) Options() chertila.Options {
	return e.opts
}

// Handle runs the full command pipeline and maps the outcome to a reply.
func (e *Engine) Handle(ctx context.Context, text string) Reply {
	img, err := e.Plot(ctx, text)
	if err != nil {
		return Reply{Text: UserMessage(err), Err: err}
	}
	return Reply{Image: img, ContentType: e.opts.Format.ContentType()}
}

// Plot parses and renders text, waiting for a free render slot.
func (e *Engine) Plot(ctx context.Context, text string) ([]byte, error) {
	req, err := e.parse(text)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, func() ([]byte, error) {
		return chertila.Render(req, e.opts)
	})
}

// Export parses text and builds an XLSX workbook.
func (e *Engine) Export(ctx context.Context, text string) ([]byte, error) {
	req, err := e.parse(text)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, func() ([]byte, error) {
		return chertila.Export(req)
	})
}

func (e *Engine) parse(text string) (*models.PlotRequest, error) {
	req, err := chertila.Parse(text)
	if err != nil {
		var parseErr *chertila.ParseError
		if errors.As(err, &parseErr) {
			e.log.Debug("Command rejected", zap.String("reason", parseErr.Reason))
		}
		return nil, err
	}
	return req, nil
}

// run executes fn in a render slot. Cancellation is honoured while waiting
// for the slot; once fn starts it runs to completion.
func (e *Engine) run(ctx context.Context, fn func() ([]byte, error)) (out []byte, err error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.sem.Release(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Render panicked", zap.Any("panic", r))
			out, err = nil, errors.Wrapf(ErrInternal, "recovered %v", r)
		}
	}()

	return fn()
}

// UserMessage maps an error to the text shown to the user.
func UserMessage(err error) string {
	var parseErr *chertila.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.UserMessage()
	}
	var degenerate *chertila.DegenerateFitError
	if errors.As(err, &degenerate) {
		return degenerate.UserMessage()
	}
	var outOfRange *chertila.RangeError
	if errors.As(err, &outOfRange) {
		return outOfRange.UserMessage()
	}
	return InternalMessage
}
