//go:build e2e

package subscription_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"meetup-api/internal/domain/user"
	"meetup-api/tests/common/authtest"
	"meetup-api/tests/common/dbtest"
	"meetup-api/tests/common/httptest"
	"meetup-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const subscriptionsURL = "/api/subscriptions"

type subscriptionSuite struct {
	e2e.SharedSuite
}

func TestSubscriptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(subscriptionSuite))
}

func subscribeURL(meetupID uuid.UUID) string {
	return "/api/meetups/" + meetupID.String() + "/subscriptions"
}

func (s *subscriptionSuite) futureStart(d time.Duration) time.Time {
	return time.Now().Add(d).Truncate(time.Second).UTC()
}

func (s *subscriptionSuite) TestSubscribe() {
	s.Run("他人のミートアップに参加登録でき、通知ジョブが積まれる", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(meetupID.String(), body["meetup_id"])
		s.Equal("Go Night Tokyo", body["meetup_title"])

		s.Equal(1, dbtest.CountSubscriptions(s.T(), s.DB, meetupID))
		s.Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))
	})

	s.Run("自分のミートアップには参加登録できない", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "organizer@example.com", string(user.RoleMember))
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "OWN_MEETUP")
		s.Equal(0, dbtest.CountSubscriptions(s.T(), s.DB, meetupID))
		s.Equal(0, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))
	})

	s.Run("開催済みのミートアップには参加登録できない", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Past Night", time.Now().Add(-1*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "PAST_MEETUP")
	})

	s.Run("二重登録はALREADY_SUBSCRIBED", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		httptest.AssertErrorCode(s.T(), second, http.StatusBadRequest, "ALREADY_SUBSCRIBED")

		s.Equal(1, dbtest.CountSubscriptions(s.T(), s.DB, meetupID))
		s.Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))
	})

	s.Run("同時刻開催の別ミートアップはTIME_CONFLICT", func() {
		startsAt := s.futureStart(48 * time.Hour)
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		firstID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", startsAt)
		secondID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Rust Night Tokyo", startsAt)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(firstID), nil, token)
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(secondID), nil, token)
		httptest.AssertErrorCode(s.T(), second, http.StatusBadRequest, "TIME_CONFLICT")
		s.Equal(0, dbtest.CountSubscriptions(s.T(), s.DB, secondID))
	})

	s.Run("同時刻でも日が違えば登録できる", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		firstID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		secondID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Rust Night Tokyo", s.futureStart(72*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(firstID), nil, token)
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(secondID), nil, token)
		s.Equal(http.StatusCreated, second.Code, second.Body.String())
	})

	s.Run("存在しないミートアップは404", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(uuid.New()), nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "MEETUP_NOT_FOUND")
	})

	s.Run("未認証では401", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code, rec.Body.String())
	})
}

// 同一ユーザーが同じミートアップへ同時に登録しても1行しか入らないこと
func (s *subscriptionSuite) TestSubscribeRace() {
	s.Run("並行登録は1件だけ成功する", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		const parallel = 4
		statuses := make([]int, parallel)
		var wg sync.WaitGroup
		for i := range parallel {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
				statuses[i] = rec.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				// 敗者はALREADY_SUBSCRIBED
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, created)
		s.Equal(1, dbtest.CountSubscriptions(s.T(), s.DB, meetupID))
		s.Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))
	})
}

func (s *subscriptionSuite) TestNotificationDelivery() {
	s.Run("ワーカーがキューを捌いてジョブがsentになる", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		s.Require().Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))

		processed, err := s.Worker.ProcessOnce(s.T().Context())
		s.Require().NoError(err)
		s.Equal(1, processed)

		s.Equal(0, dbtest.CountNotificationJobs(s.T(), s.DB, "queued"))
		s.Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "sent"))
	})

	s.Run("拒否された登録ではジョブは積まれない", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "organizer@example.com", string(user.RoleMember))
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

		processed, err := s.Worker.ProcessOnce(s.T().Context())
		s.Require().NoError(err)
		s.Equal(0, processed)
	})
}

func (s *subscriptionSuite) TestNotificationJobsAdmin() {
	s.Run("管理者はキューの中身を参照できる", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		memberToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, memberToken)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		jobsRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications/jobs?status=queued", nil, adminToken)

		var jobs []map[string]any
		httptest.AssertSuccessResponse(s.T(), jobsRec, http.StatusOK, &jobs)
		s.Require().Len(jobs, 1)
		s.Equal("subscription_created", jobs[0]["topic"])
	})

	s.Run("一般ユーザーは403", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications/jobs", nil, token)
		s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	})
}

func (s *subscriptionSuite) TestUnsubscribe() {
	s.Run("参加登録を解除でき、再登録もできる", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		s.Require().Equal(http.StatusCreated, created.Code, created.Body.String())

		deleted := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, subscribeURL(meetupID), nil, token)
		s.Equal(http.StatusNoContent, deleted.Code, deleted.Body.String())
		s.Equal(0, dbtest.CountSubscriptions(s.T(), s.DB, meetupID))

		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, subscribeURL(meetupID), nil, token)
		s.Equal(http.StatusCreated, again.Code, again.Body.String())
	})

	s.Run("登録がなければ404", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		meetupID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Go Night Tokyo", s.futureStart(48*time.Hour))
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, subscribeURL(meetupID), nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND")
	})
}

func (s *subscriptionSuite) TestList() {
	s.Run("未来の登録だけが開始時刻昇順で返る", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "organizer@example.com", string(user.RoleMember))
		attendeeID := dbtest.CreateTestUser(s.T(), s.DB, "attendee@example.com", string(user.RoleMember))
		token := authtest.LoginUser(s.T(), s.Router, "attendee@example.com", "password123")

		laterStart := s.futureStart(72 * time.Hour)
		soonerStart := s.futureStart(24 * time.Hour)
		pastStart := time.Now().Add(-24 * time.Hour)

		laterID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Later", laterStart)
		soonerID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Sooner", soonerStart)
		pastID := dbtest.CreateTestMeetup(s.T(), s.DB, ownerID, "Past", pastStart)

		dbtest.CreateTestSubscription(s.T(), s.DB, attendeeID, laterID, laterStart)
		dbtest.CreateTestSubscription(s.T(), s.DB, attendeeID, soonerID, soonerStart)
		dbtest.CreateTestSubscription(s.T(), s.DB, attendeeID, pastID, pastStart)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, subscriptionsURL, nil, token)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(soonerID.String(), body[0]["meetup_id"])
		s.Equal(laterID.String(), body[1]["meetup_id"])
	})

	s.Run("登録がなければ空配列", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "attendee@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, subscriptionsURL, nil, token)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}
