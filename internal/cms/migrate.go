package cms

import (
	"encoding/json"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// legacy block kind renamed between draft versions 2 and 3.
const legacyBlockMedia = "media"

// rawState is the permissive wire shape Migrate accepts: every field may be
// missing, null or of an older layout.
type rawState struct {
	Version int                                     `json:"version"`
	Locale  entity.Locale                           `json:"locale"`
	Content map[entity.Locale]json.RawMessage       `json:"content"`
	Design  json.RawMessage                         `json:"design"`
	Blocks  []rawBlock                              `json:"blocks"`
}

type rawBlock struct {
	Id      string `json:"id"`
	Type    string `json:"type"`
	Enabled *bool  `json:"enabled"`
}

// Migrate repairs a persisted draft of any age into the current State
// shape. It is a pure function: total on arbitrary input (including nil and
// malformed JSON, which yield the default state) and idempotent.
func Migrate(raw json.RawMessage) State {
	out := DefaultState()
	if len(raw) == 0 || string(raw) == "null" {
		return out
	}

	var in rawState
	if err := json.Unmarshal(raw, &in); err != nil {
		return out
	}

	if entity.ValidLocale(in.Locale) {
		out.Locale = in.Locale
	}
	out.Blocks = migrateBlocks(in.Blocks)

	for _, locale := range entity.Locales {
		bundle := defaultBundle(locale)
		if rawBundle, ok := in.Content[locale]; ok && len(rawBundle) > 0 {
			// Decoding over the default backfills any missing section.
			_ = json.Unmarshal(rawBundle, bundle)
		}
		repairBundle(bundle, locale)
		out.Content[locale] = bundle
	}

	if len(in.Design) > 0 {
		design := defaultDesign()
		_ = json.Unmarshal(in.Design, &design)
		if design.Anim == (entity.AnimConfig{}) {
			design.Anim = defaultDesign().Anim
		}
		out.Design = design
	}

	out.Version = Version
	return out
}

func migrateBlocks(in []rawBlock) []entity.BlockConfig {
	if in == nil {
		return defaultBlocks()
	}
	blocks := make([]entity.BlockConfig, 0, len(in))
	for _, b := range in {
		kind := entity.BlockKind(b.Type)
		if b.Type == legacyBlockMedia {
			kind = entity.BlockLogos
		}
		if !entity.ValidBlockKind(kind) {
			continue
		}
		id := b.Id
		if id == "" {
			id = string(kind)
		}
		enabled := true
		if b.Enabled != nil {
			enabled = *b.Enabled
		}
		blocks = append(blocks, entity.BlockConfig{Id: id, Type: kind, Enabled: enabled})
	}
	if len(blocks) == 0 {
		return defaultBlocks()
	}
	return blocks
}

// repairBundle backfills fields added after the bundle was first persisted.
func repairBundle(b *entity.Bundle, locale entity.Locale) {
	def := defaultBundle(locale)

	if b.Site == (entity.SiteMeta{}) {
		b.Site = def.Site
	}
	if b.Site.LogoSrc == "" {
		b.Site.LogoSrc = defaultLogoSrc
	}
	if b.Hero.Title == "" && b.Hero.Subtitle == "" && len(b.Hero.Stats) == 0 {
		b.Hero = def.Hero
	}
	if b.Hero.Stats == nil {
		b.Hero.Stats = def.Hero.Stats
	}
	if b.Logos == nil {
		b.Logos = []entity.Logo{}
	}
	if b.Features == nil {
		b.Features = []entity.Feature{}
	}
	if b.Services == nil {
		b.Services = []entity.Service{}
	}
	if b.Payments == nil {
		b.Payments = []entity.Payment{}
	}
	if b.Testimonials == nil {
		b.Testimonials = []entity.Testimonial{}
	}
	if b.FAQ == nil {
		b.FAQ = []entity.FAQItem{}
	}
}
