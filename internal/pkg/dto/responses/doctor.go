package responses

import "medicare-portal/internal/app/models"

type Doctors struct {
	Controls     models.SearchControls `json:"controls"`
	Inquiry      models.DoctorsInquiry `json:"inquiry"`
	UsedDefaults bool                  `json:"usedDefaults"`
	Fallbacks    []string              `json:"fallbacks"`
	List         []models.Doctor       `json:"list"`
	Total        int                   `json:"total"`
	Navigation   *models.Navigation    `json:"navigation"`
}

type DoctorFilters struct {
	Controls   models.SearchControls `json:"controls"`
	Inquiry    models.DoctorsInquiry `json:"inquiry"`
	Navigation *models.Navigation    `json:"navigation"`
}
