package domain

import "time"

// User is a local demo-grade account. The password is stored and compared
// in the clear; this tool is single-user and offline.
type User struct {
	Email     string
	Password  string
	CreatedAt time.Time
}

// UserState is the full per-user document: the settings object plus the
// complete project list, most-recent-first. It is persisted as one JSON
// document keyed by the user's email.
type UserState struct {
	Settings Settings   `json:"settings"`
	Projects []*Project `json:"projects"`
}

// NewUserState returns the state a fresh account starts with.
func NewUserState() *UserState {
	return &UserState{Settings: DefaultSettings()}
}

// Normalize sanitizes the settings and every project in the document.
func (st *UserState) Normalize() {
	st.Settings.Normalize()
	for _, p := range st.Projects {
		p.Normalize()
	}
}

// FindProject returns the project with the given ID, or nil.
func (st *UserState) FindProject(id string) *Project {
	for _, p := range st.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RunningProject returns the one project whose timer is running, or nil.
// At most one project may be running at any instant.
func (st *UserState) RunningProject() *Project {
	for _, p := range st.Projects {
		if p.IsTimerRunning {
			return p
		}
	}
	return nil
}
