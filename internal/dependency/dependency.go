package dependency

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Content interface {
		// GetPublished returns the single live content value, or nil when
		// nothing has been published yet.
		GetPublished(ctx context.Context) (*entity.PublishedContent, error)
		// SetPublished overwrites the live content value wholesale.
		SetPublished(ctx context.Context, req entity.PublishRequest) (*entity.PublishedContent, error)
		// AddSnapshot appends a historical copy of one locale bundle.
		AddSnapshot(ctx context.Context, locale entity.Locale, content json.RawMessage) error
		// GetSnapshots returns recent snapshots, newest first, optionally
		// filtered by locale.
		GetSnapshots(ctx context.Context, locale *entity.Locale, limit int) ([]entity.ContentSnapshot, error)
	}

	Reviews interface {
		// AddReview inserts a pending review and returns its id.
		AddReview(ctx context.Context, ins entity.ReviewInsert, email, ipHash, uaHash string) (int, error)
		// GetApprovedPaged returns approved reviews plus the recomputed
		// summary over all approved rows.
		GetApprovedPaged(ctx context.Context, limit, offset int) ([]entity.Review, entity.ReviewSummary, error)
		// GetReviews returns the newest reviews of any status.
		GetReviews(ctx context.Context, limit int) ([]entity.Review, error)
		// Moderate transitions a pending review to approved or rejected.
		// Rows already moderated are left untouched.
		Moderate(ctx context.Context, id int, status entity.ReviewStatus) error
	}

	Users interface {
		AddUser(ctx context.Context, ins entity.TeamUserInsert) (*entity.TeamUser, error)
		GetUsers(ctx context.Context) ([]entity.TeamUser, error)
		UpdateUser(ctx context.Context, id int, patch entity.TeamUserPatch) (*entity.TeamUser, error)
		DeleteUser(ctx context.Context, id int) error
	}

	Analytics interface {
		GetDaily(ctx context.Context) ([]entity.AnalyticsDaily, error)
		UpsertDaily(ctx context.Context, rows []entity.AnalyticsDaily) error
	}

	Settings interface {
		// GetSetting returns the JSON value for key, or nil when unset.
		GetSetting(ctx context.Context, key string) (json.RawMessage, error)
		SetSetting(ctx context.Context, key string, value json.RawMessage) error
	}

	// RateLimiter decides allow/deny by counting prior attempts for a key
	// within a trailing window. The insert and the count are separate
	// statements: a narrow race can let concurrent requests through.
	RateLimiter interface {
		Allow(ctx context.Context, key string, limit int, window time.Duration) (entity.RateLimitResult, error)
	}

	Repository interface {
		Content() Content
		Reviews() Reviews
		Users() Users
		Analytics() Analytics
		Settings() Settings
		RateLimit() RateLimiter
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
