package domain

// Settings holds per-user application preferences. These are free of
// invariants beyond enum membership and persist under their own key.
type Settings struct {
	UserID        string `json:"userId"`
	Units         string `json:"units" validate:"omitempty,oneof=metric imperial"`
	Theme         string `json:"theme" validate:"omitempty,oneof=light dark"`
	Notifications bool   `json:"notifications"`
}

// DefaultSettings returns the settings a fresh account starts with.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:        userID,
		Units:         "metric",
		Theme:         "light",
		Notifications: true,
	}
}
