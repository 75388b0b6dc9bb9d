package exclusion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/umputun/exclude-pages/pkg/domain"
)

//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsProvider

// Store reads and writes the set of excluded page ids
type Store interface {
	// GetExcluded returns the stored set, empty if nothing was ever stored
	GetExcluded(ctx context.Context) (Set, error)
	// SetExcluded overwrites the stored set
	SetExcluded(ctx context.Context, ids Set) error
}

// SettingsProvider is a generic key-value settings storage. GetSetting returns an empty string for a missing key.
type SettingsProvider interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// SettingsStore keeps excluded ids as a JSON array under a single settings key
type SettingsStore struct {
	settings SettingsProvider
	key      string
}

// NewSettingsStore makes a store on top of settings, empty key means domain.SettingExcludedPages
func NewSettingsStore(settings SettingsProvider, key string) *SettingsStore {
	if key == "" {
		key = domain.SettingExcludedPages
	}
	return &SettingsStore{settings: settings, key: key}
}

// GetExcluded reads the set from settings
func (s *SettingsStore) GetExcluded(ctx context.Context) (Set, error) {
	value, err := s.settings.GetSetting(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("get excluded pages: %w", err)
	}
	return decodeSet(value)
}

// SetExcluded writes the set to settings
func (s *SettingsStore) SetExcluded(ctx context.Context, ids Set) error {
	value, err := encodeSet(ids)
	if err != nil {
		return err
	}
	if err := s.settings.SetSetting(ctx, s.key, value); err != nil {
		return fmt.Errorf("set excluded pages: %w", err)
	}
	return nil
}

// decodeSet parses JSON array of ids, empty value is an empty set
func decodeSet(value string) (Set, error) {
	if strings.TrimSpace(value) == "" {
		return NewSet(), nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, fmt.Errorf("decode excluded pages %q: %w", value, err)
	}
	return NewSet(ids...), nil
}

// encodeSet makes JSON array of sorted ids
func encodeSet(ids Set) (string, error) {
	data, err := json.Marshal(ids.IDs())
	if err != nil {
		return "", fmt.Errorf("encode excluded pages: %w", err)
	}
	return string(data), nil
}
