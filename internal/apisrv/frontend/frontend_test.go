package frontend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
	"github.com/kyctrust/kyctrust-manager/internal/dependency/mocks"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *mocks.Content, *mocks.Reviews, *broadcast.Broadcaster) {
	content := mocks.NewContent(t)
	reviews := mocks.NewReviews(t)
	events := broadcast.New()

	srv := New(&Config{ContactLimit: 2, ContactWindow: time.Minute}, content, reviews, events)
	return srv, content, reviews, events
}

func TestGetPublished(t *testing.T) {
	srv, content, _, _ := newTestServer(t)

	content.EXPECT().GetPublished(mock.Anything).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/content/published", nil)
	rec := httptest.NewRecorder()
	srv.GetPublished(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	content.EXPECT().GetPublished(mock.Anything).Return(&entity.PublishedContent{
		Ar: json.RawMessage(`{"x":1}`),
		En: json.RawMessage(`{"x":2}`),
	}, nil).Once()

	rec = httptest.NewRecorder()
	srv.GetPublished(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ar":{"x":1}`)
}

func TestSubmitReviewHoneypot(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	body := `{"name":"Bot","comment":"buy now","rating":5,"website":"http://spam.example"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.SubmitReview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Spam detected")
}

func TestSubmitReviewValidation(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	for name, body := range map[string]string{
		"missing name":    `{"comment":"fine","rating":5}`,
		"missing comment": `{"name":"A","rating":5}`,
		"rating too low":  `{"name":"A","comment":"fine","rating":0}`,
		"rating too high": `{"name":"A","comment":"fine","rating":6}`,
		"bad email":       `{"name":"A","comment":"fine","rating":5,"email":"not-an-email"}`,
		"broken json":     `{"name":`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
			rec := httptest.NewRecorder()
			srv.SubmitReview(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubmitReviewOk(t *testing.T) {
	srv, _, reviews, _ := newTestServer(t)

	reviews.EXPECT().
		AddReview(mock.Anything, entity.ReviewInsert{Name: "Ahmed", Rating: 5, Comment: "great"}, "", mock.Anything, mock.Anything).
		Return(42, nil).Once()

	body := `{"name":"Ahmed","comment":"great","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.SubmitReview(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"id":42,"status":"pending"}`, rec.Body.String())
}

func TestListReviewsPaging(t *testing.T) {
	srv, _, reviews, _ := newTestServer(t)

	// default page and pageSize
	reviews.EXPECT().GetApprovedPaged(mock.Anything, 10, 0).
		Return([]entity.Review{}, entity.ReviewSummary{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()
	srv.ListReviews(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=30", rec.Header().Get("Cache-Control"))

	var resp listReviewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.NotNil(t, resp.Items)

	// pageSize is clamped to 20, page drives the offset
	reviews.EXPECT().GetApprovedPaged(mock.Anything, 20, 40).
		Return(nil, entity.ReviewSummary{Average: 4.5, Count: 90}, nil).Once()

	req = httptest.NewRequest(http.MethodGet, "/api/reviews?page=3&pageSize=500", nil)
	rec = httptest.NewRecorder()
	srv.ListReviews(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Equal(t, 90, resp.Summary.Count)

	// garbage params fall back to defaults
	reviews.EXPECT().GetApprovedPaged(mock.Anything, 10, 0).
		Return(nil, entity.ReviewSummary{}, nil).Once()

	req = httptest.NewRequest(http.MethodGet, "/api/reviews?page=banana&pageSize=-3", nil)
	rec = httptest.NewRecorder()
	srv.ListReviews(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
}

func TestContact(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	body := `{"name":"Sara","email":"sara@example.com","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Contact(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	// missing fields
	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Sara"}`))
	rec = httptest.NewRecorder()
	srv.Contact(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// third request from the same client exceeds the limit of 2
	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec = httptest.NewRecorder()
	srv.Contact(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestEventsStream(t *testing.T) {
	srv, _, _, events := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/content/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		srv.Events(rec, req)
		close(done)
	}()

	// wait for the subscription to land, then publish
	for i := 0; i < 100 && events.Len() == 0; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, events.Len())
	ev := events.Publish()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not stop on context cancel")
	}

	out := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, out, "event: published")
	assert.Contains(t, out, ev.Id)
}
