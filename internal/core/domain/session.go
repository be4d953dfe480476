package domain

import (
	"strings"
	"time"
)

// Mode selects the execution path shared behind one backend interface.
type Mode string

const (
	ModeDemo Mode = "demo"
	ModeLive Mode = "live"
)

// ParseMode rejects anything but demo and live.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDemo:
		return ModeDemo, true
	case ModeLive:
		return ModeLive, true
	}
	return "", false
}

// Account is owned by the ad platform; the orchestrator only caches it for
// the lifetime of a session.
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Currency    string `json:"currency"`
}

// Credentials are opaque to everything but the backend that issued them.
type Credentials struct {
	Subject string `json:"subject"`
	Token   []byte `json:"token,omitempty"`
}

// Session is the per-user state held by the session store. It is created at
// authentication and destroyed on logout; nothing guarantees it survives a
// process restart.
type Session struct {
	UserID        string      `json:"user_id"`
	Mode          Mode        `json:"mode"`
	Authenticated bool        `json:"authenticated"`
	Credentials   Credentials `json:"credentials"`
	Accounts      []Account   `json:"accounts,omitempty"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// HasAccount reports whether id is among the cached accounts.
func (s Session) HasAccount(id string) bool {
	for _, a := range s.Accounts {
		if a.ID == id {
			return true
		}
	}
	return false
}
