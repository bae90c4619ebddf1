package models

// User is the account record owned by the identity backend.
// Read-only from the client's perspective.
type User struct {
	ID        string `json:"$id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar,omitempty"`
}

// Session is the ephemeral credential bound to a user. The locally persisted
// copy is a cache only; the backend session is authoritative.
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret,omitempty"`
}
