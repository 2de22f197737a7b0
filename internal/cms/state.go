// Package cms holds the dashboard draft: a versioned, serializable state
// object edited locally by the operator and pushed to the publish pipeline
// explicitly. It never feeds the public site directly.
package cms

import (
	"encoding/json"
	"fmt"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// Version is the current persisted draft shape. Older payloads are repaired
// by Migrate on load.
const Version = 4

type State struct {
	Version int                              `json:"version"`
	Locale  entity.Locale                    `json:"locale"`
	Content map[entity.Locale]*entity.Bundle `json:"content"`
	Design  entity.Design                    `json:"design"`
	Blocks  []entity.BlockConfig             `json:"blocks"`
}

// MergeContent applies a partial update to one locale's bundle. The patch is
// JSON with any subset of top-level bundle keys; present keys replace the
// corresponding section wholesale, absent keys are untouched.
func (s *State) MergeContent(locale entity.Locale, patch json.RawMessage) error {
	if !entity.ValidLocale(locale) {
		return &entity.ValidationError{Message: fmt.Sprintf("unknown locale %q", locale)}
	}
	bundle, ok := s.Content[locale]
	if !ok || bundle == nil {
		bundle = defaultBundle(locale)
		s.Content[locale] = bundle
	}
	if err := json.Unmarshal(patch, bundle); err != nil {
		return &entity.ValidationError{Message: fmt.Sprintf("malformed content patch: %v", err)}
	}
	return nil
}

// ReorderBlocks rebuilds the block list in the order given by ids. Ids that
// do not match an existing block are dropped; blocks not mentioned are
// removed, matching the dashboard's drag-and-drop contract.
func (s *State) ReorderBlocks(ids []string) {
	byId := make(map[string]entity.BlockConfig, len(s.Blocks))
	for _, b := range s.Blocks {
		byId[b.Id] = b
	}
	next := make([]entity.BlockConfig, 0, len(ids))
	for _, id := range ids {
		if b, ok := byId[id]; ok {
			next = append(next, b)
		}
	}
	s.Blocks = next
}

// ToggleBlock enables or disables one block. Unknown ids are a no-op.
func (s *State) ToggleBlock(id string, enabled bool) {
	for i := range s.Blocks {
		if s.Blocks[i].Id == id {
			s.Blocks[i].Enabled = enabled
			return
		}
	}
}

func (s *State) AddService(locale entity.Locale, svc entity.Service) error {
	bundle, err := s.bundle(locale)
	if err != nil {
		return err
	}
	bundle.Services = append(bundle.Services, svc)
	return nil
}

func (s *State) UpdateService(locale entity.Locale, index int, patch json.RawMessage) error {
	bundle, err := s.bundle(locale)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(bundle.Services) {
		return &entity.ValidationError{Message: fmt.Sprintf("service index %d out of range", index)}
	}
	if err := json.Unmarshal(patch, &bundle.Services[index]); err != nil {
		return &entity.ValidationError{Message: fmt.Sprintf("malformed service patch: %v", err)}
	}
	return nil
}

func (s *State) RemoveService(locale entity.Locale, index int) error {
	bundle, err := s.bundle(locale)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(bundle.Services) {
		return &entity.ValidationError{Message: fmt.Sprintf("service index %d out of range", index)}
	}
	bundle.Services = append(bundle.Services[:index], bundle.Services[index+1:]...)
	return nil
}

// ReorderServices rebuilds the service list from indexes into the current
// list. Out-of-range indexes are dropped.
func (s *State) ReorderServices(locale entity.Locale, order []int) error {
	bundle, err := s.bundle(locale)
	if err != nil {
		return err
	}
	next := make([]entity.Service, 0, len(order))
	for _, i := range order {
		if i >= 0 && i < len(bundle.Services) {
			next = append(next, bundle.Services[i])
		}
	}
	bundle.Services = next
	return nil
}

// Import replaces the whole draft with an exported state, running it
// through migration so old exports keep working.
func (s *State) Import(raw json.RawMessage) {
	*s = Migrate(raw)
}

// Export serializes the draft for download or persistence.
func (s *State) Export() (json.RawMessage, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal draft: %w", err)
	}
	return b, nil
}

func (s *State) bundle(locale entity.Locale) (*entity.Bundle, error) {
	if !entity.ValidLocale(locale) {
		return nil, &entity.ValidationError{Message: fmt.Sprintf("unknown locale %q", locale)}
	}
	bundle, ok := s.Content[locale]
	if !ok || bundle == nil {
		bundle = defaultBundle(locale)
		s.Content[locale] = bundle
	}
	return bundle, nil
}
