package member

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemberRouter(store *fakeStore, storage *fakeStorage, mailer *fakeMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := NewService(store, storage, mailer)
	h := NewHandler(store, svc, 5)

	router := gin.New()
	router.POST("/api/members", h.Create)
	router.GET("/api/members", h.ListActive)
	router.GET("/api/members/expiring", h.ListExpiring)
	router.POST("/api/members/:id/remind", h.Remind)
	return router
}

func memberForm(t *testing.T, fields map[string]string, withPhoto bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withPhoto {
		part, err := writer.CreateFormFile("photo", "ravi.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"name":           "Ravi Kumar",
		"email":          "ravi@example.com",
		"phone":          "9876543210",
		"age":            "28",
		"height":         "175",
		"weight":         "72",
		"membershipType": "Monthly",
		"joiningDate":    "2024-03-15",
	}
}

func TestCreateMemberHandler(t *testing.T) {
	store := newFakeStore()
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	body, contentType := memberForm(t, validFields(), true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"expiryDate"`)
	require.Len(t, store.inserted, 1)
}

func TestCreateMemberWithoutPhoto(t *testing.T) {
	store := newFakeStore()
	storage := &fakeStorage{}
	router := setupMemberRouter(store, storage, &fakeMailer{})

	body, contentType := memberForm(t, validFields(), false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Photo is required")
	assert.Empty(t, store.inserted, "no write without a photo")
	assert.Zero(t, storage.uploads)
}

func TestCreateMemberMissingFields(t *testing.T) {
	store := newFakeStore()
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	fields := validFields()
	delete(fields, "email")

	body, contentType := memberForm(t, fields, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.inserted)
}

func TestCreateMemberInvalidPlan(t *testing.T) {
	store := newFakeStore()
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	fields := validFields()
	fields["membershipType"] = "Weekly"

	body, contentType := memberForm(t, fields, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.inserted)
}

func TestCreateMemberBadJoiningDate(t *testing.T) {
	store := newFakeStore()
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	fields := validFields()
	fields["joiningDate"] = "15-03-2024"

	body, contentType := memberForm(t, fields, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestListActiveHandler(t *testing.T) {
	store := newFakeStore()
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRemindHandler(t *testing.T) {
	store := newFakeStore()
	store.byID["abc"] = &Member{Name: "Ravi", Email: "ravi@example.com", MembershipType: PlanMonthly}
	router := setupMemberRouter(store, &fakeStorage{}, &fakeMailer{})

	t.Run("Known member", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/members/abc/remind", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ravi@example.com")
	})

	t.Run("Unknown member", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/members/missing/remind", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
