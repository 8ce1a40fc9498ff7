package requests

import "medicare-portal/internal/app/models"

type DoctorFilters struct {
	Query    string                     `json:"query"`
	Controls models.SearchControlsPatch `json:"controls"`
}
