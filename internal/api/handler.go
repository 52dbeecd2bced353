package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prgate/prgate/internal/github"
	"github.com/prgate/prgate/internal/models"
)

// Evaluator runs a full fetch-and-analyze pass for one pull request author.
type Evaluator interface {
	Evaluate(ctx context.Context, prCtx models.PRContext) (*models.AnalysisResult, error)
}

// Handler serves the evaluation endpoints.
type Handler struct {
	evaluator Evaluator
	logger    *logrus.Logger
}

// NewHandler creates a new API handler.
func NewHandler(evaluator Evaluator, logger *logrus.Logger) *Handler {
	return &Handler{
		evaluator: evaluator,
		logger:    logger,
	}
}

// EvaluateRequest identifies the pull request to evaluate.
type EvaluateRequest struct {
	Owner    string `json:"owner" binding:"required"`
	Repo     string `json:"repo" binding:"required"`
	PRNumber int    `json:"pr_number"`
	Author   string `json:"author" binding:"required"`
}

// ErrorResponse is the error payload for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Evaluate handles POST /api/v1/evaluate.
func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prCtx := models.PRContext{
		Owner:    req.Owner,
		Repo:     req.Repo,
		PRNumber: req.PRNumber,
		Author:   req.Author,
	}

	result, err := h.evaluator.Evaluate(c.Request.Context(), prCtx)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"owner":  req.Owner,
			"repo":   req.Repo,
			"author": req.Author,
		}).Error("Evaluation failed")
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError maps the fetch error taxonomy onto HTTP statuses: rate
// limiting surfaces as 429, permanent upstream errors keep their status when
// it is a client error, everything else is a bad gateway.
func statusForError(err error) int {
	if github.IsRateLimit(err) {
		return http.StatusTooManyRequests
	}

	var validationErr *github.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var permErr *github.PermanentError
	if errors.As(err, &permErr) {
		if permErr.StatusCode >= 400 && permErr.StatusCode < 500 {
			return permErr.StatusCode
		}
	}

	return http.StatusBadGateway
}
