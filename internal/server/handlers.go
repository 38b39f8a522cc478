package server

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/chertila/chertila-go/internal/engine"
	"github.com/chertila/chertila-go/pkg/chertila"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PlotRequest is the JSON body accepted by the plot endpoints.
type PlotRequest struct {
	Text string `json:"text" binding:"required"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) plot(c *gin.Context) {
	text, ok := s.commandText(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	img, err := s.engine.Plot(ctx, text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, s.engine.Options().Format.ContentType(), img)
}

func (s *Server) export(c *gin.Context) {
	text, ok := s.commandText(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	data, err := s.engine.Export(ctx, text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="plot.xlsx"`)
	c.Data(http.StatusOK, XLSXContentType, data)
}

// commandText reads the command from a JSON or plain text body.
func (s *Server) commandText(c *gin.Context) (string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCommandBytes)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req PlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: chertila.UsageMessage})
			return "", false
		}
		return req.Text, true
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: chertila.UsageMessage})
		return "", false
	}
	return string(body), true
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

// fail writes the user-facing message for err with a matching status.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, chertila.ErrParse):
		status = http.StatusBadRequest
	case errors.Is(err, chertila.ErrDegenerateFit), errors.Is(err, chertila.ErrOutOfRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	default:
		s.log.Error("Plot request failed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.Error(err),
		)
	}
	c.JSON(status, ErrorResponse{Error: engine.UserMessage(err)})
}
