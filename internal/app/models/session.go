package models

type SessionStatus string

const (
	SessionAnonymous      SessionStatus = "ANONYMOUS"
	SessionAuthenticating SessionStatus = "AUTHENTICATING"
	SessionAuthenticated  SessionStatus = "AUTHENTICATED"
)

// Audience is the backend identity an authentication attempt is made against.
type Audience string

const (
	AudienceMember Audience = "member"
	AudienceDoctor Audience = "doctor"
)

type SessionState struct {
	Status   SessionStatus `json:"status"`
	Audience Audience      `json:"audience,omitempty"`
	Role     string        `json:"role,omitempty"`
}

type AuthPayload struct {
	AccessToken string `json:"accessToken"`
}

// SessionSignal announces a login or logout of one visitor.
type SessionSignal struct {
	Signal    string `json:"signal"`
	VisitorID string `json:"visitorId"`
	Timestamp int64  `json:"timestamp"`
}
