// Package gate implements the shared-password dashboard gate: unlock,
// status, and the middleware that guards admin routes.
package gate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/auth/pwhash"
	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/middleware"
)

const (
	// CookieName is the unlock marker cookie. Its value is always "1"; the
	// cookie's presence is the whole session state.
	CookieName = "dash_unlock"

	// settingPasswordHash stores the shared password hash as JSON
	// {"hash": "..."} under the settings table.
	settingPasswordHash = "admin_password_hash"

	minPasswordLength = 4

	unlockLimitKeyPrefix = "gate:unlock:"
)

type Config struct {
	PasswordHasherSaltSize   int           `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int           `mapstructure:"password_hasher_iterations"`
	CookieMaxAge             time.Duration `mapstructure:"cookie_max_age"`
	UnlockLimit              int           `mapstructure:"unlock_limit"`
	UnlockWindow             time.Duration `mapstructure:"unlock_window"`
	// Secure marks the unlock cookie Secure; off for local development.
	Secure bool `mapstructure:"secure"`
}

type Server struct {
	c        *Config
	settings dependency.Settings
	limiter  dependency.RateLimiter
	pwh      *pwhash.PasswordHasher
}

func New(c *Config, settings dependency.Settings, limiter dependency.RateLimiter) (*Server, error) {
	if c.CookieMaxAge == 0 {
		c.CookieMaxAge = 7 * 24 * time.Hour
	}
	if c.UnlockLimit == 0 {
		c.UnlockLimit = 10
	}
	if c.UnlockWindow == 0 {
		c.UnlockWindow = time.Minute
	}

	pwh, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, fmt.Errorf("can't create password hasher: %w", err)
	}

	return &Server{
		c:        c,
		settings: settings,
		limiter:  limiter,
		pwh:      pwh,
	}, nil
}

type unlockRequest struct {
	Password string `json:"password"`
}

type passwordHashSetting struct {
	Hash string `json:"hash"`
}

// Unlock checks the shared password and sets the unlock cookie. The very
// first unlock attempt with a valid password bootstraps the stored hash.
func (s *Server) Unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := unlockLimitKeyPrefix + middleware.ClientIP(ctx)
	res, err := s.limiter.Allow(ctx, key, s.c.UnlockLimit, s.c.UnlockWindow)
	if err != nil {
		slog.Default().ErrorContext(ctx, "rate limit check failed", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	if !res.Allowed {
		render.Render(w, r, respond.ErrRateLimited("Too many attempts, try again later", int(s.c.UnlockWindow.Seconds())))
		return
	}

	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if len(req.Password) < minPasswordLength {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("invalid password")))
		return
	}

	raw, err := s.settings.GetSetting(ctx, settingPasswordHash)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load password hash", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	if raw == nil {
		// First run: adopt this password as the shared secret.
		hash, err := s.pwh.HashPassword(req.Password)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't hash password", "error", err)
			render.Render(w, r, respond.ErrInternal(err))
			return
		}
		value, err := json.Marshal(passwordHashSetting{Hash: hash})
		if err != nil {
			render.Render(w, r, respond.ErrInternal(err))
			return
		}
		if err := s.settings.SetSetting(ctx, settingPasswordHash, value); err != nil {
			slog.Default().ErrorContext(ctx, "can't store password hash", "error", err)
			render.Render(w, r, respond.ErrInternal(err))
			return
		}
		slog.Default().InfoContext(ctx, "dashboard password bootstrapped")
	} else {
		var stored passwordHashSetting
		if err := json.Unmarshal(raw, &stored); err != nil {
			slog.Default().ErrorContext(ctx, "malformed password hash setting", "error", err)
			render.Render(w, r, respond.ErrInternal(err))
			return
		}
		if err := s.pwh.Validate(req.Password, stored.Hash); err != nil {
			render.Render(w, r, respond.ErrUnauthorized("Wrong password"))
			return
		}
	}

	s.setUnlockCookie(w)
	render.Render(w, r, respond.NewOk())
}

// Status reports whether the request carries a valid unlock cookie.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]bool{"unlocked": unlocked(r)})
}

// Lock clears the unlock cookie.
func (s *Server) Lock(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	render.Render(w, r, respond.NewOk())
}

// WithGate rejects requests that lack the unlock cookie.
func (s *Server) WithGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !unlocked(r) {
			render.Render(w, r, respond.ErrUnauthorized("Locked"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) setUnlockCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "1",
		Path:     "/",
		MaxAge:   int(s.c.CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func unlocked(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value == "1"
}
