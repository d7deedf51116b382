package api

import (
	"net/http"
	"strconv"

	"meetup-api/internal/handler/httperr"
	"meetup-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var knownJobStatuses = map[string]struct{}{
	"queued":  {},
	"sending": {},
	"sent":    {},
	"failed":  {},
}

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List notification jobs
// @Description Inspect the outbox queue; admin only
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Job status (queued/sending/sent/failed); empty for jobs due to run"
// @Param limit query int false "Max rows, default 50"
// @Success 200 {array} queries.NotificationJobView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /notifications/jobs [get]
func (h *NotificationHandler) ListJobs(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		if _, ok := knownJobStatuses[status]; !ok {
			httperr.AbortWithCode(c, http.StatusBadRequest, nil, "Unknown job status", CodeValidationFailed)
			return
		}
	}

	limit := int32(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 || parsed > 500 {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid limit", CodeValidationFailed)
			return
		}
		limit = int32(parsed)
	}

	views, err := h.q.ListJobs(c.Request.Context(), status, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notification jobs", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
