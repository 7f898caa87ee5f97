package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing-marketplace/internal/assist"
	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/service"
)

// AssistHandler handles description assist requests.
type AssistHandler struct {
	assistService service.AssistServiceInterface
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(assistService service.AssistServiceInterface) *AssistHandler {
	return &AssistHandler{assistService: assistService}
}

// DescribeRequest is the body of the assist endpoints.
type DescribeRequest struct {
	DraftKey string `json:"draft_key"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// DescribeResponse carries a generated description, or null when the title
// was empty.
type DescribeResponse struct {
	Description *string `json:"description"`
}

// TaskResponse represents an assist task in the API response.
type TaskResponse struct {
	ID          string  `json:"id"`
	DraftKey    string  `json:"draft_key,omitempty"`
	Status      string  `json:"status"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	FinishedAt  *string `json:"finished_at,omitempty"`
}

func toTaskResponse(s assist.TaskSnapshot) TaskResponse {
	resp := TaskResponse{
		ID:        s.ID,
		DraftKey:  s.DraftKey,
		Status:    "pending",
		CreatedAt: s.CreatedAt.Format(TimeFormat),
	}
	if s.Finished {
		resp.Status = "done"
		finishedAt := s.FinishedAt.Format(TimeFormat)
		resp.FinishedAt = &finishedAt
		if s.OK {
			text := s.Text
			resp.Description = &text
		}
	}
	return resp
}

// Describe handles POST /api/v1/assist/description
func (h *AssistHandler) Describe(c *gin.Context) {
	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, ok := h.assistService.Enhance(c.Request.Context(), req.Title, req.Category)
	if !ok {
		c.JSON(http.StatusOK, DescribeResponse{})
		return
	}
	c.JSON(http.StatusOK, DescribeResponse{Description: &text})
}

// CreateTask handles POST /api/v1/assist/tasks
func (h *AssistHandler) CreateTask(c *gin.Context) {
	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.assistService.StartTask(req.DraftKey, req.Title, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrTaskPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "an enhancement is already running for this draft"})
			return
		}
		logger.WarnContext(c.Request.Context(), "Failed to start assist task", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assist is busy, try again later"})
		return
	}

	c.JSON(http.StatusAccepted, toTaskResponse(task))
}

// GetTask handles GET /api/v1/assist/tasks/:id
func (h *AssistHandler) GetTask(c *gin.Context) {
	task, err := h.assistService.GetTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask handles DELETE /api/v1/assist/tasks/:id
func (h *AssistHandler) DeleteTask(c *gin.Context) {
	if err := h.assistService.DisposeTask(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
