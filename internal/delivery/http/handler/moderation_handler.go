package handler

import (
	"net/http"
	"strconv"

	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/usecase/moderation"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase *moderation.ModerationUseCase
}

func NewModerationHandler(moderationUseCase *moderation.ModerationUseCase) *ModerationHandler {
	return &ModerationHandler{moderationUseCase: moderationUseCase}
}

// Block handles POST /block/:user_id.
func (h *ModerationHandler) Block(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	targetUserID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		return
	}

	block, err := h.moderationUseCase.BlockUser(c.Request.Context(), userID, targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// Report handles POST /report/:user_id.
func (h *ModerationHandler) Report(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	targetUserID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		return
	}

	var req moderation.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	report, err := h.moderationUseCase.ReportUser(c.Request.Context(), userID, targetUserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
