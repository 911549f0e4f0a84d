package store

import (
	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/validation"
)

// SettingsFor returns the user's settings, falling back to defaults when
// the user has never saved any.
func (s *Store) SettingsFor(userID string) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.settings[userID]; ok {
		return st
	}
	return domain.DefaultSettings(userID)
}

// SaveSettings validates and stores the user's preferences.
func (s *Store) SaveSettings(st domain.Settings) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.UserID == "" {
		return domain.Settings{}, ErrUnknownUser
	}
	defaults := domain.DefaultSettings(st.UserID)
	if st.Units == "" {
		st.Units = defaults.Units
	}
	if st.Theme == "" {
		st.Theme = defaults.Theme
	}
	if errs := validation.Struct(st); errs != nil {
		return domain.Settings{}, errs
	}

	s.settings[st.UserID] = st
	s.persistSettings()
	return st, nil
}
