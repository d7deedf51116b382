package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"meetup-api/internal/domain/meetup"
	reqdto "meetup-api/internal/handler/dto/request"
	resdto "meetup-api/internal/handler/dto/response"
	"meetup-api/internal/handler/httperr"
	"meetup-api/internal/handler/middleware"
	"meetup-api/internal/usecase/commands"
	"meetup-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeetupHandler struct {
	cmds commands.MeetupCommands
	q    queries.MeetupQueries
}

func NewMeetupHandler(cmds commands.MeetupCommands, q queries.MeetupQueries) *MeetupHandler {
	return &MeetupHandler{cmds: cmds, q: q}
}

// @Summary List meetups
// @Description List meetups ordered by start time, optionally filtered to one day
// @Tags meetups
// @Produce json
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Param page query int false "Page number, 10 per page"
// @Success 200 {array} resdto.MeetupResponse
// @Failure 400 {object} httperr.Response
// @Router /meetups [get]
func (h *MeetupHandler) List(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", CodeValidationFailed)
			return
		}
		date = &parsed
	}

	page := int32(1)
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid page", CodeValidationFailed)
			return
		}
		page = int32(parsed)
	}

	views, err := h.q.List(c.Request.Context(), date, page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list meetups", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetupViews(views))
}

// @Summary Get meetup
// @Description Get a meetup by ID
// @Tags meetups
// @Produce json
// @Param id path string true "Meetup ID"
// @Success 200 {object} resdto.MeetupResponse
// @Failure 404 {object} httperr.Response
// @Router /meetups/{id} [get]
func (h *MeetupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid id", CodeValidationFailed)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMeetupNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, "Meetup not found", CodeMeetupNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meetup", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetupView(view))
}

// @Summary Create meetup
// @Description Create a meetup starting in the future
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetupRequest true "Create meetup request"
// @Success 201 {object} resdto.MeetupResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /meetups [post]
func (h *MeetupHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request", CodeValidationFailed)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid meetup data", CodeValidationFailed)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create meetup failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMeetupView(result.Meetup))
}

// @Summary Update meetup
// @Description Update an own, not yet started meetup
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Param request body reqdto.UpdateMeetupRequest true "Update meetup request"
// @Success 200 {object} resdto.MeetupResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meetups/{id} [put]
func (h *MeetupHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid id", CodeValidationFailed)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateMeetupRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, bindErr, "Invalid request", CodeValidationFailed)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req, userID); err != nil {
		h.abortMutateErr(c, err, "Update meetup failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meetup", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetupView(view))
}

// @Summary Delete meetup
// @Description Delete an own, not yet started meetup
// @Tags meetups
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /meetups/{id} [delete]
func (h *MeetupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid id", CodeValidationFailed)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, userID); err != nil {
		h.abortMutateErr(c, err, "Delete meetup failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MeetupHandler) abortMutateErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrMeetupNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "Meetup not found", CodeMeetupNotFound)
	case errors.Is(err, meetup.ErrAlreadyHappened):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Meetup already happened", CodeMeetupHappened)
	case errors.Is(err, meetup.ErrNotOwner):
		httperr.AbortWithCode(c, http.StatusForbidden, err, "Not the meetup owner", CodeNotOwner)
	case errors.Is(err, commands.ErrRescheduleConflict):
		httperr.AbortWithCode(c, http.StatusConflict, err, "A subscriber already has a meetup at the new time", CodeTimeConflict)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid meetup data", CodeValidationFailed)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
