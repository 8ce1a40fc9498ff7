package models

type NotificationKind string

const (
	NotificationError   NotificationKind = "error"
	NotificationSuccess NotificationKind = "success"
)

// Notification is a modal alert the page shows to the user.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// Navigation tells the page where to go next. Full navigations reload the
// document so server side routing sees the new cookie.
type Navigation struct {
	Target string `json:"target"`
	Full   bool   `json:"full"`
	Scroll bool   `json:"scroll"`
}
