package models

import "time"

// AuthMode describes how the session authenticates, which in turn decides
// which entity types the service accepts writes for. Web sessions have the
// full surface; API-token sessions get HTTP 405 on tag, filter, and habit
// writes.
type AuthMode int

const (
	AuthModeWeb AuthMode = iota
	AuthModeAPIToken
)

func (m AuthMode) String() string {
	switch m {
	case AuthModeWeb:
		return "web"
	case AuthModeAPIToken:
		return "api-token"
	}
	return "unknown"
}

// SignonRequest is the credential payload of the signon endpoint.
type SignonRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignonResponse carries the session token the service sets for the "t"
// cookie, plus the account coordinates the client caches.
type SignonResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	InboxID  string `json:"inboxId,omitempty"`
	Pro      bool   `json:"pro,omitempty"`
}

// Session is the client-side login state persisted between runs: enough to
// resume syncing without signing on again.
type Session struct {
	Username   string
	Token      string
	DeviceID   string
	InboxID    string
	Checkpoint int64
	UpdatedAt  time.Time
}
