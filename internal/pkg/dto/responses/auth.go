package responses

import "medicare-portal/internal/app/models"

// Session is the page facing view of the current visitor session.
type Session struct {
	State         models.SessionState   `json:"state"`
	Member        models.Member         `json:"member"`
	Doctor        models.Doctor         `json:"doctor"`
	Notifications []models.Notification `json:"notifications"`
	Navigation    *models.Navigation    `json:"navigation"`
}

type ForgotPassword struct {
	Verified      bool                  `json:"verified"`
	Notifications []models.Notification `json:"notifications"`
	Navigation    *models.Navigation    `json:"navigation"`
}

type ResetPassword struct {
	Reset         bool                  `json:"reset"`
	Notifications []models.Notification `json:"notifications"`
	Navigation    *models.Navigation    `json:"navigation"`
}
