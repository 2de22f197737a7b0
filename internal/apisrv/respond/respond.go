// Package respond carries the shared render.Renderer error and ack shapes
// used by every handler package.
package respond

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse is the JSON error body: an HTTP status plus a free-text
// message. No structured error codes.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	ErrorText string `json:"error"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      err.Error(),
	}
}

func ErrUnauthorized(msg string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusUnauthorized,
		ErrorText:      msg,
	}
}

// ErrRateLimited renders a 429 with a Retry-After header of retryAfter
// whole seconds.
func ErrRateLimited(msg string, retryAfterSeconds int) render.Renderer {
	return &rateLimitedResponse{
		ErrResponse: ErrResponse{
			HTTPStatusCode: http.StatusTooManyRequests,
			ErrorText:      msg,
		},
		retryAfterSeconds: retryAfterSeconds,
	}
}

type rateLimitedResponse struct {
	ErrResponse
	retryAfterSeconds int
}

func (e *rateLimitedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Retry-After", fmt.Sprintf("%d", e.retryAfterSeconds))
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrNotFound(msg string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      msg,
	}
}

func ErrConflict(msg string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusConflict,
		ErrorText:      msg,
	}
}

// ErrInternal hides the underlying error from the client.
func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      http.StatusText(http.StatusInternalServerError),
	}
}

// Ok is the `{ok:true}` acknowledgement body.
type Ok struct {
	OK bool `json:"ok"`
}

func (o *Ok) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewOk() *Ok {
	return &Ok{OK: true}
}
