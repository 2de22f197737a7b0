package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// published_content is a single-row table: every publish overwrites it
// wholesale, last write wins.
const publishedContentId = 1

type contentStore struct {
	*MYSQLStore
}

// Content returns an object implementing the Content interface
func (ms *MYSQLStore) Content() dependency.Content {
	return &contentStore{
		MYSQLStore: ms,
	}
}

type publishedRaw struct {
	Ar        string         `db:"ar"`
	En        string         `db:"en"`
	Design    sql.NullString `db:"design"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (cs *contentStore) GetPublished(ctx context.Context) (*entity.PublishedContent, error) {
	query := `SELECT ar, en, design, updated_at FROM published_content WHERE id = :id`
	raw, err := QueryNamedOne[publishedRaw](ctx, cs.DB(), query, map[string]any{
		"id": publishedContentId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query published content: %w", err)
	}

	return &entity.PublishedContent{
		Ar:        json.RawMessage(raw.Ar),
		En:        json.RawMessage(raw.En),
		Design:    entity.NullRaw(raw.Design),
		UpdatedAt: raw.UpdatedAt,
	}, nil
}

func (cs *contentStore) SetPublished(ctx context.Context, req entity.PublishRequest) (*entity.PublishedContent, error) {
	now := cs.Now()

	var design any
	if !cs.emptyDesign(req.Design) {
		design = string(req.Design)
	}

	query := `
	INSERT INTO published_content (id, ar, en, design, updated_at)
	VALUES (:id, :ar, :en, :design, :updatedAt)
	ON DUPLICATE KEY UPDATE
		ar = VALUES(ar),
		en = VALUES(en),
		design = VALUES(design),
		updated_at = VALUES(updated_at)`

	err := ExecNamed(ctx, cs.DB(), query, map[string]any{
		"id":        publishedContentId,
		"ar":        string(req.Ar),
		"en":        string(req.En),
		"design":    design,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set published content: %w", err)
	}

	return &entity.PublishedContent{
		Ar:        req.Ar,
		En:        req.En,
		Design:    req.Design,
		UpdatedAt: now,
	}, nil
}

func (cs *contentStore) emptyDesign(raw json.RawMessage) bool {
	s := string(raw)
	return s == "" || s == "null"
}

func (cs *contentStore) AddSnapshot(ctx context.Context, locale entity.Locale, content json.RawMessage) error {
	query := `INSERT INTO content_snapshot (locale, content) VALUES (:locale, :content)`
	err := ExecNamed(ctx, cs.DB(), query, map[string]any{
		"locale":  locale,
		"content": string(content),
	})
	if err != nil {
		return fmt.Errorf("failed to add content snapshot: %w", err)
	}
	return nil
}

type snapshotRaw struct {
	Id        int           `db:"id"`
	Locale    entity.Locale `db:"locale"`
	Content   string        `db:"content"`
	CreatedAt time.Time     `db:"created_at"`
}

func (cs *contentStore) GetSnapshots(ctx context.Context, locale *entity.Locale, limit int) ([]entity.ContentSnapshot, error) {
	params := map[string]any{
		"limit": limit,
	}
	where := ""
	if locale != nil {
		where = "WHERE locale = :locale"
		params["locale"] = *locale
	}

	query := fmt.Sprintf(`
	SELECT id, locale, content, created_at
	FROM content_snapshot
	%s
	ORDER BY created_at DESC, id DESC
	LIMIT :limit`, where)

	raws, err := QueryListNamed[snapshotRaw](ctx, cs.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query content snapshots: %w", err)
	}

	snapshots := make([]entity.ContentSnapshot, 0, len(raws))
	for _, r := range raws {
		snapshots = append(snapshots, entity.ContentSnapshot{
			Id:        r.Id,
			Locale:    r.Locale,
			Content:   json.RawMessage(r.Content),
			CreatedAt: r.CreatedAt,
		})
	}
	return snapshots, nil
}
