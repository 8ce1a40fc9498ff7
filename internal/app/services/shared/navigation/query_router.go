package navigation

import (
	"medicare-portal/internal/app/models"
	"net/url"
	"sync"
)

// QueryRouter is the page router seen from the server: it starts from the
// query string of the page and records history replacements.
type QueryRouter struct {
	mu       sync.Mutex
	path     string
	query    url.Values
	replaced *models.Navigation
}

func NewQueryRouter(path string, query url.Values) *QueryRouter {
	return &QueryRouter{path: path, query: cloneValues(query)}
}

func (r *QueryRouter) Query() url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneValues(r.query)
}

// Replace swaps the query without a history entry or scroll change.
func (r *QueryRouter) Replace(query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.query = cloneValues(query)
	target := r.path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	r.replaced = &models.Navigation{Target: target, Full: false, Scroll: false}
}

// Replaced returns the last replacement, or nil when the URL was left alone.
func (r *QueryRouter) Replaced() *models.Navigation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaced
}

func cloneValues(values url.Values) url.Values {
	cloned := make(url.Values, len(values))
	for key, items := range values {
		cloned[key] = append([]string(nil), items...)
	}
	return cloned
}
