package notifier

import (
	"medicare-portal/internal/app/models"
	"sync"
)

// Recorder collects the alerts and navigation decided while serving one
// request so they can be returned to the page.
type Recorder struct {
	mu            sync.Mutex
	notifications []models.Notification
	navigation    *models.Navigation
}

func NewRecorder() *Recorder {
	return &Recorder{notifications: []models.Notification{}}
}

func (r *Recorder) Notify(notification models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, notification)
}

// Navigate records a full navigation. The last call wins.
func (r *Recorder) Navigate(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigation = &models.Navigation{Target: target, Full: true, Scroll: true}
}

func (r *Recorder) Notifications() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	notifications := make([]models.Notification, len(r.notifications))
	copy(notifications, r.notifications)
	return notifications
}

func (r *Recorder) Navigation() *models.Navigation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.navigation
}
