package responses

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/exceptions"
)

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	StatusCode    int                   `json:"status_code"`
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	DevMessage    string                `json:"dev_message,omitempty"`
	Locations     []exceptions.Location `json:"locations,omitempty"`
	Notifications []models.Notification `json:"notifications,omitempty"`
}
