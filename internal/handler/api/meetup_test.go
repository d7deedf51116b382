//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/domain/user"
	"meetup-api/internal/handler/api"
	"meetup-api/internal/usecase/commands"
	"meetup-api/internal/usecase/queries"
	"meetup-api/tests/common/builder"
	"meetup-api/tests/common/httptest"
	"meetup-api/tests/common/testutil"
	commandsmock "meetup-api/tests/mock/commands"
	queriesmock "meetup-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MeetupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMeetupCommands
	mockQueries  *queriesmock.MockMeetupQueries
	handler      *api.MeetupHandler
	userID       uuid.UUID
}

func (s *MeetupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMeetupCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMeetupQueries(s.mockCtrl)
	s.handler = api.NewMeetupHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	s.router.GET("/api/meetups", s.handler.List)
	s.router.GET("/api/meetups/:id", s.handler.Get)
	s.router.POST("/api/meetups", authMiddleware, s.handler.Create)
	s.router.PUT("/api/meetups/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/api/meetups/:id", authMiddleware, s.handler.Delete)
}

func (s *MeetupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMeetupHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeetupHandlerTestSuite))
}

type testCaseMeetup struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestList
// ================================================================================

func (s *MeetupHandlerTestSuite) TestList() {
	url := "/api/meetups"

	s.Run("success: returns 200 OK without filters", func() {
		views := []*queries.MeetupView{builder.NewMeetupBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), nil, int32(1)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(views[0].ID.String(), body[0]["id"])
	})

	s.Run("success: passes date filter and page through", func() {
		wantDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(d *time.Time) bool {
			return d != nil && d.Equal(wantDate)
		}), int32(3)).Return([]*queries.MeetupView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-14&page=3", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=14-03-2026", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidationFailed)
	})

	s.Run("error: 400 Bad Request on non-positive page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?page=0", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidationFailed)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil, int32(1)).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list meetups")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *MeetupHandlerTestSuite) TestGet() {
	view := builder.NewMeetupBuilder().BuildView()
	url := "/api/meetups/" + view.ID.String()

	s.Run("success: returns 200 OK with the meetup", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.Title, body["title"])
	})

	s.Run("error: 404 Not Found for unknown meetup", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, queries.ErrMeetupNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, api.CodeMeetupNotFound)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/meetups/not-a-uuid", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidationFailed)
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *MeetupHandlerTestSuite) TestCreate() {
	url := "/api/meetups"

	reqBody := builder.NewMeetupBuilder().BuildDTO()
	returnView := builder.NewMeetupBuilder().BuildView()
	expectedResult := &commands.CreateMeetupResult{Meetup: returnView}

	missing := []testCaseMeetup{
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: description (required)", mutate: testutil.Field("description", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: location (required)", mutate: testutil.Field("location", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: starts_at (required)", mutate: testutil.Field("starts_at", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseMeetup{
		{name: "empty title", mutate: testutil.Field("title", ""), expectCode: http.StatusBadRequest},
		{name: "starts_at not a timestamp", mutate: testutil.Field("starts_at", "tomorrow evening"), expectCode: http.StatusBadRequest},
		{name: "title length OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
	}

	allValidationTestCases := [][]testCaseMeetup{missing, malformed}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
							Return(expectedResult, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, api.CodeValidationFailed)
					}
				})
			}
		}
	})

	s.Run("error: 400 Bad Request when domain validation rejects", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidationFailed)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on unexpected command failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errors.New("tx failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create meetup failed")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *MeetupHandlerTestSuite) TestUpdate() {
	view := builder.NewMeetupBuilder().BuildView()
	url := "/api/meetups/" + view.ID.String()
	reqBody := builder.NewMeetupBuilder().BuildDTO()

	s.Run("success: returns 200 OK with the refreshed view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.userID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
	})

	s.Run("error: maps mutation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"meetup not found", commands.ErrMeetupNotFound, http.StatusNotFound, api.CodeMeetupNotFound},
			{"meetup already happened", meetup.ErrAlreadyHappened, http.StatusBadRequest, api.CodeMeetupHappened},
			{"not the owner", meetup.ErrNotOwner, http.StatusForbidden, api.CodeNotOwner},
			{"reschedule collides with a subscriber slot", commands.ErrRescheduleConflict, http.StatusConflict, api.CodeTimeConflict},
			{"domain validation", commands.ErrDomainValidation, http.StatusBadRequest, api.CodeValidationFailed},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: 400 Bad Request on invalid body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidationFailed)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *MeetupHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/meetups/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps mutation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"meetup not found", commands.ErrMeetupNotFound, http.StatusNotFound, api.CodeMeetupNotFound},
			{"meetup already happened", meetup.ErrAlreadyHappened, http.StatusBadRequest, api.CodeMeetupHappened},
			{"not the owner", meetup.ErrNotOwner, http.StatusForbidden, api.CodeNotOwner},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
