package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
	"github.com/shopspring/decimal"
	"github.com/kyctrust/kyctrust-manager/internal/dependency/mocks"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRevalidator records revalidation calls.
type fakeRevalidator struct {
	mu    sync.Mutex
	calls []broadcast.Event
	ch    chan struct{}
}

func newFakeRevalidator() *fakeRevalidator {
	return &fakeRevalidator{ch: make(chan struct{}, 8)}
}

func (f *fakeRevalidator) RevalidateAll(ctx context.Context, ev broadcast.Event) {
	f.mu.Lock()
	f.calls = append(f.calls, ev)
	f.mu.Unlock()
	f.ch <- struct{}{}
}

func (f *fakeRevalidator) wait(t *testing.T) {
	t.Helper()
	select {
	case <-f.ch:
	case <-time.After(time.Second):
		t.Fatal("revalidator was not called")
	}
}

func newTestServer(t *testing.T) (*Server, *mocks.Repository, *broadcast.Broadcaster, *fakeRevalidator) {
	repo := mocks.NewRepository(t)
	events := broadcast.New()
	rv := newFakeRevalidator()

	srv := New(&Config{}, repo, events, rv)
	return srv, repo, events, rv
}

func TestPublish(t *testing.T) {
	srv, repo, events, rv := newTestServer(t)

	content := mocks.NewContent(t)
	repo.EXPECT().Content().Return(content)

	req := entity.PublishRequest{
		Ar: json.RawMessage(`{"a":1}`),
		En: json.RawMessage(`{"b":2}`),
	}
	published := &entity.PublishedContent{Ar: req.Ar, En: req.En, UpdatedAt: time.Now()}
	content.EXPECT().SetPublished(mock.Anything, mock.Anything).Return(published, nil).Once()
	content.EXPECT().AddSnapshot(mock.Anything, entity.LocaleAr, mock.Anything).Return(nil).Once()
	content.EXPECT().AddSnapshot(mock.Anything, entity.LocaleEn, mock.Anything).Return(nil).Once()

	ch, cancelSub := events.Subscribe()
	defer cancelSub()

	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/content/published", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	srv.Publish(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	select {
	case ev := <-ch:
		assert.Equal(t, broadcast.EventPublished, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("publish event was not broadcast")
	}
	rv.wait(t)
}

func TestPublishMissingLocale(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	for name, body := range map[string]string{
		"no ar":   `{"en":{"b":2}}`,
		"no en":   `{"ar":{"a":1}}`,
		"null ar": `{"ar":null,"en":{"b":2}}`,
		"empty":   `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/content/published", strings.NewReader(body))
			rec := httptest.NewRecorder()
			srv.Publish(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "missing ar/en bundles")
		})
	}
}

func TestPublishSnapshotFailureIsSwallowed(t *testing.T) {
	srv, repo, _, rv := newTestServer(t)

	content := mocks.NewContent(t)
	repo.EXPECT().Content().Return(content)

	published := &entity.PublishedContent{
		Ar: json.RawMessage(`{"a":1}`),
		En: json.RawMessage(`{"b":2}`),
	}
	content.EXPECT().SetPublished(mock.Anything, mock.Anything).Return(published, nil).Once()
	content.EXPECT().AddSnapshot(mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Twice()

	req := httptest.NewRequest(http.MethodPost, "/api/content/published",
		strings.NewReader(`{"ar":{"a":1},"en":{"b":2}}`))
	rec := httptest.NewRecorder()
	srv.Publish(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	rv.wait(t)
}

func TestPublishRateLimit(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	limiter := mocks.NewRateLimiter(t)
	repo.EXPECT().RateLimit().Return(limiter)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	guarded := srv.PublishRateLimit(next)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 30, 5*time.Minute).
		Return(entity.RateLimitResult{Allowed: true, Remaining: 29}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/content/published", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 30, 5*time.Minute).
		Return(entity.RateLimitResult{Allowed: false, Reset: time.Now().Add(5 * time.Minute)}, nil).Once()

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "300", rec.Header().Get("Retry-After"))
}

func TestModerate(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	reviews := mocks.NewReviews(t)
	repo.EXPECT().Reviews().Return(reviews)
	reviews.EXPECT().Moderate(mock.Anything, 7, entity.ReviewStatusApproved).Return(nil).Once()

	r := chi.NewRouter()
	r.Post("/api/reviews/{id}/moderate", srv.Moderate)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/7/moderate",
		strings.NewReader(`{"status":"approved"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// pending is not a valid moderation target
	req = httptest.NewRequest(http.MethodPost, "/api/reviews/7/moderate",
		strings.NewReader(`{"status":"pending"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/reviews/notanumber/moderate",
		strings.NewReader(`{"status":"approved"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddUserConflict(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	users := mocks.NewUsers(t)
	repo.EXPECT().Users().Return(users)
	users.EXPECT().AddUser(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	repo.EXPECT().IsErrUniqueViolation(assert.AnError).Return(true).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name":"Sara","email":"sara@example.com"}`))
	rec := httptest.NewRecorder()
	srv.AddUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestAddUserDefaultsRole(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	users := mocks.NewUsers(t)
	repo.EXPECT().Users().Return(users)
	users.EXPECT().
		AddUser(mock.Anything, entity.TeamUserInsert{
			Name: "Sara", Email: "sara@example.com", Role: entity.RoleEditor, Active: true,
		}).
		Return(&entity.TeamUser{Id: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name":"Sara","email":"SARA@example.com"}`))
	rec := httptest.NewRecorder()
	srv.AddUser(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUserValidation(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	r := chi.NewRouter()
	r.Put("/api/users/{id}", srv.UpdateUser)

	// empty patch
	req := httptest.NewRequest(http.MethodPut, "/api/users/3", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// invalid role
	req = httptest.NewRequest(http.MethodPut, "/api/users/3", strings.NewReader(`{"role":"root"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

var decimalHundred = decimal.NewFromInt(100)

func TestSynthesizeDaily(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rows := synthesizeDaily(now, 14)
	require.Len(t, rows, 14)

	for i, row := range rows {
		if i > 0 {
			assert.True(t, rows[i-1].Day.Before(row.Day))
		}
		assert.GreaterOrEqual(t, row.Visitors, 400)
		assert.Less(t, row.Visitors, 1000)
		// the funnel narrows
		assert.LessOrEqual(t, row.Leads, row.Visitors)
		assert.LessOrEqual(t, row.Orders, row.Leads)
		assert.True(t, row.ConversionRate.LessThanOrEqual(decimalHundred))
	}
	// last row is today
	assert.Equal(t, now.Truncate(24*time.Hour), rows[13].Day)
}

func TestGetDraftMigratesOnLoad(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	settings := mocks.NewSettings(t)
	repo.EXPECT().Settings().Return(settings)

	// legacy draft with a media block
	settings.EXPECT().GetSetting(mock.Anything, settingDraft).
		Return(json.RawMessage(`{"version":2,"blocks":[{"id":"media","type":"media"}]}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/draft", nil)
	rec := httptest.NewRecorder()
	srv.GetDraft(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"logos"`)
	assert.Contains(t, rec.Body.String(), `"version":4`)
}

func TestDraftOp(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	settings := mocks.NewSettings(t)
	repo.EXPECT().Settings().Return(settings)

	settings.EXPECT().GetSetting(mock.Anything, settingDraft).Return(nil, nil).Once()

	var stored json.RawMessage
	settings.EXPECT().SetSetting(mock.Anything, settingDraft, mock.Anything).
		Run(func(ctx context.Context, key string, value json.RawMessage) {
			stored = value
		}).
		Return(nil).Once()

	body := `{"op":"toggleBlock","id":"payments","enabled":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/draft/ops", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.DraftOp(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stored)
	assert.Contains(t, string(stored), `"id":"payments","type":"payments","enabled":false`)
}

func TestDraftOpUnknown(t *testing.T) {
	srv, repo, _, _ := newTestServer(t)

	settings := mocks.NewSettings(t)
	repo.EXPECT().Settings().Return(settings)
	settings.EXPECT().GetSetting(mock.Anything, settingDraft).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/draft/ops",
		strings.NewReader(`{"op":"explode"}`))
	rec := httptest.NewRecorder()
	srv.DraftOp(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishDraft(t *testing.T) {
	srv, repo, _, rv := newTestServer(t)

	settings := mocks.NewSettings(t)
	repo.EXPECT().Settings().Return(settings)
	settings.EXPECT().GetSetting(mock.Anything, settingDraft).Return(nil, nil).Once()

	content := mocks.NewContent(t)
	repo.EXPECT().Content().Return(content)
	content.EXPECT().SetPublished(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req entity.PublishRequest) (*entity.PublishedContent, error) {
			// the default draft has both locale bundles
			assert.NotEmpty(t, req.Ar)
			assert.NotEmpty(t, req.En)
			return &entity.PublishedContent{Ar: req.Ar, En: req.En, Design: req.Design}, nil
		}).Once()
	content.EXPECT().AddSnapshot(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/draft/publish", nil)
	rec := httptest.NewRecorder()
	srv.PublishDraft(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	rv.wait(t)
}
