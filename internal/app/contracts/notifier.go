package contracts

import (
	"medicare-portal/internal/app/models"
	"net/url"
)

// Notifier is the single alert primitive every user facing failure goes through.
type Notifier interface {
	Notify(notification models.Notification)
}

// Navigator performs full page navigations.
type Navigator interface {
	Navigate(target string)
}

// Router exposes the query string of the current page and replaces it
// without adding a history entry.
type Router interface {
	Query() url.Values
	Replace(query url.Values)
}
