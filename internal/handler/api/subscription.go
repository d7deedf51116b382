package api

import (
	"errors"
	"net/http"

	"meetup-api/internal/domain/subscription"
	resdto "meetup-api/internal/handler/dto/response"
	"meetup-api/internal/handler/httperr"
	"meetup-api/internal/handler/middleware"
	"meetup-api/internal/usecase/commands"
	"meetup-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary List own subscriptions
// @Description List upcoming subscriptions of the caller, soonest first
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Failure 401 {object} httperr.Response
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListActive(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list subscriptions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(views))
}

// @Summary Subscribe to a meetup
// @Description Subscribe the caller to a meetup; rejections carry a stable code
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /meetups/{id}/subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	meetupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid meetup id", CodeValidationFailed)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.Subscribe(c.Request.Context(), userID, meetupID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMeetupNotFound):
			httperr.AbortWithCode(c, http.StatusNotFound, err, "Meetup not found", CodeMeetupNotFound)
		case errors.Is(err, subscription.ErrOwnMeetup):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Cannot subscribe to own meetup", CodeOwnMeetup)
		case errors.Is(err, subscription.ErrPastMeetup):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Meetup already happened", CodePastMeetup)
		case errors.Is(err, subscription.ErrAlreadySubscribed):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Already subscribed", CodeAlreadySubscribed)
		case errors.Is(err, subscription.ErrTimeConflict):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Conflicting subscription at the same time", CodeTimeConflict)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Subscribe failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubscriptionView(result.Subscription))
}

// @Summary Unsubscribe from a meetup
// @Description Remove the caller's subscription to a meetup
// @Tags subscriptions
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /meetups/{id}/subscriptions [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	meetupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid meetup id", CodeValidationFailed)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Unsubscribe(c.Request.Context(), userID, meetupID); err != nil {
		if errors.Is(err, commands.ErrSubscriptionNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, "Subscription not found", CodeSubscriptionNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Unsubscribe failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
