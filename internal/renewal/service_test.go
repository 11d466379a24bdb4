package renewal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/member"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fakeStore struct {
	expiring []*member.Member
	queryErr error
}

func (f *fakeStore) Insert(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeStore) FindByID(ctx context.Context, id string) (*member.Member, error) {
	return nil, member.ErrNotFound
}

func (f *fakeStore) FindActive(ctx context.Context, now time.Time) ([]*member.Member, error) {
	return nil, nil
}

func (f *fakeStore) FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*member.Member, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.expiring, nil
}

// failingMailer fails for the addresses listed in failFor.
type failingMailer struct {
	sent    []string
	failFor map[string]bool
}

func (f *failingMailer) SendWelcome(ctx context.Context, to, name, plan string, expiry time.Time) error {
	return nil
}

func (f *failingMailer) SendRenewalReminder(ctx context.Context, to, name, plan string, expiry time.Time) error {
	if f.failFor[to] {
		return errors.New("relay rejected recipient")
	}
	f.sent = append(f.sent, to)
	return nil
}

func expiringMember(name, email string) *member.Member {
	return &member.Member{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Email:          email,
		MembershipType: member.PlanMonthly,
		ExpiryDate:     time.Now().AddDate(0, 0, 5),
	}
}

func TestSweepSendsOnePerMatch(t *testing.T) {
	store := &fakeStore{expiring: []*member.Member{
		expiringMember("Anil", "anil@example.com"),
		expiringMember("Priya", "priya@example.com"),
	}}
	mailer := &failingMailer{failFor: map[string]bool{}}
	svc := New(store, mailer, nil, 5)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, []string{"anil@example.com", "priya@example.com"}, mailer.sent)
}

func TestSweepIsolatesPerMemberFailures(t *testing.T) {
	store := &fakeStore{expiring: []*member.Member{
		expiringMember("Anil", "anil@example.com"),
		expiringMember("Bad", "bad@example.com"),
		expiringMember("Priya", "priya@example.com"),
	}}
	mailer := &failingMailer{failFor: map[string]bool{"bad@example.com": true}}
	svc := New(store, mailer, nil, 5)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, []string{"anil@example.com", "priya@example.com"}, mailer.sent,
		"members after the failure are still attempted")
}

func TestSweepNoMatches(t *testing.T) {
	svc := New(&fakeStore{}, &failingMailer{}, nil, 5)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 0, res.Sent)
}

func TestSweepQueryError(t *testing.T) {
	store := &fakeStore{queryErr: errors.New("connection reset")}
	svc := New(store, &failingMailer{}, nil, 5)

	_, err := svc.Run(context.Background())
	assert.Error(t, err)
}

func TestSweepGuardSkipsAlreadyReminded(t *testing.T) {
	m1 := expiringMember("Anil", "anil@example.com")
	m2 := expiringMember("Priya", "priya@example.com")
	store := &fakeStore{expiring: []*member.Member{m1, m2}}
	mailer := &failingMailer{failFor: map[string]bool{}}

	rdb, mock := redismock.NewClientMock()
	// First member was reminded by an earlier run today.
	mock.ExpectSetNX(remindedKeyPrefix+m1.ID.Hex(), 1, 24*time.Hour).SetVal(false)
	mock.ExpectSetNX(remindedKeyPrefix+m2.ID.Hex(), 1, 24*time.Hour).SetVal(true)

	svc := New(store, mailer, rdb, 5)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, []string{"priya@example.com"}, mailer.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepGuardFailsOpen(t *testing.T) {
	m1 := expiringMember("Anil", "anil@example.com")
	store := &fakeStore{expiring: []*member.Member{m1}}
	mailer := &failingMailer{failFor: map[string]bool{}}

	rdb, mock := redismock.NewClientMock()
	mock.ExpectSetNX(remindedKeyPrefix+m1.ID.Hex(), 1, 24*time.Hour).SetErr(errors.New("redis down"))

	svc := New(store, mailer, rdb, 5)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Sent, "guard errors must not block reminders")
}

func TestCheckHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports counts", func(t *testing.T) {
		store := &fakeStore{expiring: []*member.Member{
			expiringMember("Anil", "anil@example.com"),
			expiringMember("Bad", "bad@example.com"),
			expiringMember("Priya", "priya@example.com"),
		}}
		mailer := &failingMailer{failFor: map[string]bool{"bad@example.com": true}}
		h := NewHandler(New(store, mailer, nil, 5))

		router := gin.New()
		router.GET("/api/cron/check-renewal", h.Check)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cron/check-renewal", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "partial failures still answer 200")
		assert.Contains(t, w.Body.String(), `"matched":3`)
		assert.Contains(t, w.Body.String(), `"sent":2`)
		assert.Contains(t, w.Body.String(), `"failed":1`)
	})

	t.Run("query failure answers 500", func(t *testing.T) {
		store := &fakeStore{queryErr: errors.New("connection reset")}
		h := NewHandler(New(store, &failingMailer{}, nil, 5))

		router := gin.New()
		router.GET("/api/cron/check-renewal", h.Check)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cron/check-renewal", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCronAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(secret string) *gin.Engine {
		router := gin.New()
		router.GET("/cron", CronAuth(secret), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("valid secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cron", nil)
		req.Header.Set("X-Cron-Secret", "s3cret")
		newRouter("s3cret").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cron", nil)
		req.Header.Set("X-Cron-Secret", "nope")
		newRouter("s3cret").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty secret leaves endpoint open", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cron", nil)
		newRouter("").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
