package gate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kyctrust/kyctrust-manager/internal/dependency/mocks"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const password = "hunter42"

func newTestServer(t *testing.T) (*Server, *mocks.Settings, *mocks.RateLimiter) {
	settings := mocks.NewSettings(t)
	limiter := mocks.NewRateLimiter(t)

	srv, err := New(&Config{
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
	}, settings, limiter)
	require.NoError(t, err)

	return srv, settings, limiter
}

func allowResult() entity.RateLimitResult {
	return entity.RateLimitResult{Allowed: true, Remaining: 9, Reset: time.Now().Add(time.Minute)}
}

func unlock(srv *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/gate/unlock", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Unlock(rec, req)
	return rec
}

func TestUnlockBootstrapsPassword(t *testing.T) {
	srv, settings, limiter := newTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 10, time.Minute).Return(allowResult(), nil)
	settings.EXPECT().GetSetting(mock.Anything, settingPasswordHash).Return(nil, nil).Once()

	var stored json.RawMessage
	settings.EXPECT().SetSetting(mock.Anything, settingPasswordHash, mock.Anything).
		Run(func(ctx context.Context, key string, value json.RawMessage) {
			stored = value
		}).
		Return(nil).Once()

	rec := unlock(srv, `{"password":"`+password+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the bootstrap hash validates the same password and rejects others
	var s passwordHashSetting
	require.NoError(t, json.Unmarshal(stored, &s))
	assert.NoError(t, srv.pwh.Validate(password, s.Hash))
	assert.Error(t, srv.pwh.Validate("other", s.Hash))

	// unlock cookie is set
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestUnlockWrongPassword(t *testing.T) {
	srv, settings, limiter := newTestServer(t)

	hash, err := srv.pwh.HashPassword(password)
	require.NoError(t, err)
	stored, err := json.Marshal(passwordHashSetting{Hash: hash})
	require.NoError(t, err)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 10, time.Minute).Return(allowResult(), nil)
	settings.EXPECT().GetSetting(mock.Anything, settingPasswordHash).Return(stored, nil)

	rec := unlock(srv, `{"password":"not-it-at-all"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = unlock(srv, `{"password":"`+password+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestUnlockShortPassword(t *testing.T) {
	srv, _, limiter := newTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 10, time.Minute).Return(allowResult(), nil)

	rec := unlock(srv, `{"password":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnlockRateLimited(t *testing.T) {
	srv, _, limiter := newTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 10, time.Minute).
		Return(entity.RateLimitResult{Allowed: false, Reset: time.Now().Add(time.Minute)}, nil)

	rec := unlock(srv, `{"password":"`+password+`"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestStatus(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/gate/status", nil)
	rec := httptest.NewRecorder()
	srv.Status(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unlocked":false}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/gate/status", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "1"})
	rec = httptest.NewRecorder()
	srv.Status(rec, req)
	assert.JSONEq(t, `{"unlocked":true}`, rec.Body.String())
}

func TestWithGate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	guarded := srv.WithGate(next)

	req := httptest.NewRequest(http.MethodPost, "/api/content/published", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Locked")

	req = httptest.NewRequest(http.MethodPost, "/api/content/published", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "1"})
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
