package cms

import (
	"encoding/json"
	"testing"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeContent(t *testing.T) {
	s := DefaultState()

	err := s.MergeContent(entity.LocaleEn, json.RawMessage(`{"hero": {"title": "New title"}}`))
	require.NoError(t, err)

	en := s.Content[entity.LocaleEn]
	assert.Equal(t, "New title", en.Hero.Title)
	// the other locale stays untouched
	assert.NotEqual(t, "New title", s.Content[entity.LocaleAr].Hero.Title)

	err = s.MergeContent("fr", json.RawMessage(`{}`))
	assert.Error(t, err)

	err = s.MergeContent(entity.LocaleEn, json.RawMessage(`{broken`))
	assert.Error(t, err)
}

func TestReorderBlocks(t *testing.T) {
	s := DefaultState()

	s.ReorderBlocks([]string{"faq", "hero", "made-up", "cta"})

	require.Len(t, s.Blocks, 3)
	assert.Equal(t, "faq", s.Blocks[0].Id)
	assert.Equal(t, "hero", s.Blocks[1].Id)
	assert.Equal(t, "cta", s.Blocks[2].Id)
}

func TestToggleBlock(t *testing.T) {
	s := DefaultState()

	s.ToggleBlock("hero", false)
	for _, b := range s.Blocks {
		if b.Id == "hero" {
			assert.False(t, b.Enabled)
		} else {
			assert.True(t, b.Enabled)
		}
	}

	// unknown id is a no-op
	s.ToggleBlock("nope", false)
}

func TestServiceOps(t *testing.T) {
	s := DefaultState()

	err := s.AddService(entity.LocaleAr, entity.Service{Title: "A"})
	require.NoError(t, err)
	err = s.AddService(entity.LocaleAr, entity.Service{Title: "B"})
	require.NoError(t, err)
	err = s.AddService(entity.LocaleAr, entity.Service{Title: "C"})
	require.NoError(t, err)

	err = s.UpdateService(entity.LocaleAr, 1, json.RawMessage(`{"price": "99 USD", "featured": true}`))
	require.NoError(t, err)
	svc := s.Content[entity.LocaleAr].Services[1]
	assert.Equal(t, "B", svc.Title)
	assert.Equal(t, "99 USD", svc.Price)
	assert.True(t, svc.Featured)

	err = s.UpdateService(entity.LocaleAr, 7, json.RawMessage(`{}`))
	assert.Error(t, err)

	err = s.ReorderServices(entity.LocaleAr, []int{2, 0, 9})
	require.NoError(t, err)
	services := s.Content[entity.LocaleAr].Services
	require.Len(t, services, 2)
	assert.Equal(t, "C", services[0].Title)
	assert.Equal(t, "A", services[1].Title)

	err = s.RemoveService(entity.LocaleAr, 0)
	require.NoError(t, err)
	assert.Len(t, s.Content[entity.LocaleAr].Services, 1)

	err = s.RemoveService(entity.LocaleAr, 5)
	assert.Error(t, err)
}

func TestImportExportRoundTrip(t *testing.T) {
	s := DefaultState()
	require.NoError(t, s.AddService(entity.LocaleEn, entity.Service{Title: "KYC account"}))
	s.ToggleBlock("payments", false)

	raw, err := s.Export()
	require.NoError(t, err)

	var imported State
	imported.Import(raw)

	assert.Equal(t, s, imported)
}
