package entity

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Locale string

const (
	LocaleAr Locale = "ar"
	LocaleEn Locale = "en"
)

// Locales lists the supported site locales in render order.
var Locales = []Locale{LocaleAr, LocaleEn}

func ValidLocale(l Locale) bool {
	return l == LocaleAr || l == LocaleEn
}

// PublishedContent is the single live-served content value. The public site
// never reads anything else. Bundles are stored opaque: publish-time
// validation only requires both locales to be present.
type PublishedContent struct {
	Ar        json.RawMessage `db:"ar" json:"ar"`
	En        json.RawMessage `db:"en" json:"en"`
	Design    json.RawMessage `db:"design" json:"design"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// ContentSnapshot is a best-effort historical copy of one locale bundle,
// inserted right after a successful publish.
type ContentSnapshot struct {
	Id        int             `db:"id" json:"id"`
	Locale    Locale          `db:"locale" json:"locale"`
	Content   json.RawMessage `db:"content" json:"content"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// PublishRequest is the payload of the publish operation.
type PublishRequest struct {
	Ar     json.RawMessage `json:"ar"`
	En     json.RawMessage `json:"en"`
	Design json.RawMessage `json:"design"`
}

func ValidatePublishRequest(p *PublishRequest) error {
	if emptyJSON(p.Ar) || emptyJSON(p.En) {
		return &ValidationError{Message: "missing ar/en bundles"}
	}
	return nil
}

func emptyJSON(raw json.RawMessage) bool {
	s := string(raw)
	return s == "" || s == "null"
}

// Setting is a key to JSON value row. The shared gate password hash and the
// persisted CMS draft live here.
type Setting struct {
	Key       string          `db:"setting_key"`
	Value     json.RawMessage `db:"setting_value"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// NullRaw adapts a nullable JSON column to json.RawMessage.
func NullRaw(ns sql.NullString) json.RawMessage {
	if !ns.Valid {
		return nil
	}
	return json.RawMessage(ns.String)
}
