// Package handler provides HTTP handlers for developer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmakerhq/dmaker/internal/developer/model"
	"github.com/dmakerhq/dmaker/internal/developer/service"
)

// Handler handles HTTP requests for developer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new developer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateDeveloper handles POST /create-developer request.
// @Summary Register a new developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param request body model.CreateDeveloperRequest true "Request"
// @Success 201 {object} model.CreateDeveloperResponse
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST, LEVEL_EXPERIENCE_YEARS_NOT_MATCHED)"
// @Failure 409 {object} ErrorResponse "Member id already taken (DUPLICATED_MEMBER_ID)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /create-developer [post].
func (h *Handler) CreateDeveloper(c *gin.Context) {
	var req model.CreateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateDeveloper(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrLevelExperienceMismatch) {
			errorResponse(c, "LEVEL_EXPERIENCE_YEARS_NOT_MATCHED",
				"developer level and experience years do not match", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrDuplicateMemberID) {
			errorResponse(c, "DUPLICATED_MEMBER_ID", "member id already exists", http.StatusConflict)
			return
		}
		h.logger.Errorw("error creating developer", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAllEmployedDevelopers handles GET /developers request.
// @Summary List all employed developers
// @Tags Developers
// @Produce json
// @Success 200 {array} model.DeveloperSummary
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /developers [get].
func (h *Handler) GetAllEmployedDevelopers(c *gin.Context) {
	summaries, err := h.service.GetAllEmployedDevelopers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing developers", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetDeveloperDetail handles GET /developers/:memberId request.
// Retired developers remain visible here.
// @Summary Get developer detail by member id
// @Tags Developers
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} model.DeveloperDetail
// @Failure 404 {object} ErrorResponse "Developer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /developers/{memberId} [get].
func (h *Handler) GetDeveloperDetail(c *gin.Context) {
	memberID := c.Param("memberId")

	detail, err := h.service.GetDeveloperDetail(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, model.ErrDeveloperNotFound) {
			notFoundResponse(c, "developer not found")
			return
		}
		h.logger.Errorw("error getting developer detail", "member_id", memberID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// EditDeveloper handles PUT /developers/:memberId request.
// @Summary Update a developer's level, skill type and experience years
// @Tags Developers
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param request body model.EditDeveloperRequest true "Request"
// @Success 200 {object} model.DeveloperDetail
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST, LEVEL_EXPERIENCE_YEARS_NOT_MATCHED)"
// @Failure 404 {object} ErrorResponse "Developer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /developers/{memberId} [put].
func (h *Handler) EditDeveloper(c *gin.Context) {
	memberID := c.Param("memberId")

	var req model.EditDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	detail, err := h.service.EditDeveloper(c.Request.Context(), memberID, &req)
	if err != nil {
		if errors.Is(err, model.ErrLevelExperienceMismatch) {
			errorResponse(c, "LEVEL_EXPERIENCE_YEARS_NOT_MATCHED",
				"developer level and experience years do not match", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrDeveloperNotFound) {
			notFoundResponse(c, "developer not found")
			return
		}
		h.logger.Errorw("error editing developer", "member_id", memberID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// DeleteDeveloper handles DELETE /developer/:memberId request.
// @Summary Retire a developer
// @Tags Developers
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} model.DeveloperDetail "Post-retirement state"
// @Failure 404 {object} ErrorResponse "Developer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /developer/{memberId} [delete].
func (h *Handler) DeleteDeveloper(c *gin.Context) {
	memberID := c.Param("memberId")

	detail, err := h.service.DeleteDeveloper(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, model.ErrDeveloperNotFound) {
			notFoundResponse(c, "developer not found")
			return
		}
		h.logger.Errorw("error deleting developer", "member_id", memberID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, detail)
}
