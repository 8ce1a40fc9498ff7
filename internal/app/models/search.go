package models

import (
	"medicare-portal/internal/pkg/constvars"
	"slices"
)

// DoctorsInquiry is the filter bundle the doctors query expects. It is also
// the JSON carried by the input URL parameter.
type DoctorsInquiry struct {
	Page      int          `json:"page"`
	Limit     int          `json:"limit"`
	Sort      string       `json:"sort"`
	Direction string       `json:"direction"`
	Search    DoctorSearch `json:"search"`
}

type DoctorSearch struct {
	Text                 string       `json:"text,omitempty"`
	Location             string       `json:"location,omitempty"`
	SpecializationList   []string     `json:"specializationList,omitempty"`
	ConsultationTypeList []string     `json:"consultationTypeList,omitempty"`
	PricesRange          *PricesRange `json:"pricesRange,omitempty"`
}

type PricesRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type FeeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchControls is the in-memory state behind the doctor search filters.
type SearchControls struct {
	SearchText               string   `json:"searchText"`
	Location                 string   `json:"location"`
	SelectedSpecialization   string   `json:"selectedSpecialization"`
	SelectedConsultationType string   `json:"selectedConsultationType"`
	FeeRange                 FeeRange `json:"feeRange"`
	SortBy                   string   `json:"sortBy"`
	CurrentPage              int      `json:"currentPage"`
}

// SearchControlsPatch carries the controls a user changed. Nil fields are
// left untouched.
type SearchControlsPatch struct {
	SearchText               *string   `json:"searchText,omitempty"`
	Location                 *string   `json:"location,omitempty"`
	SelectedSpecialization   *string   `json:"selectedSpecialization,omitempty" validate:"omitempty,specialization"`
	SelectedConsultationType *string   `json:"selectedConsultationType,omitempty" validate:"omitempty,consultation_type"`
	FeeRange                 *FeeRange `json:"feeRange,omitempty"`
	SortBy                   *string   `json:"sortBy,omitempty"`
	CurrentPage              *int      `json:"currentPage,omitempty"`
}

func (p SearchControlsPatch) Apply(controls *SearchControls) {
	if p.SearchText != nil {
		controls.SearchText = *p.SearchText
	}
	if p.Location != nil {
		controls.Location = *p.Location
	}
	if p.SelectedSpecialization != nil {
		controls.SelectedSpecialization = *p.SelectedSpecialization
	}
	if p.SelectedConsultationType != nil {
		controls.SelectedConsultationType = *p.SelectedConsultationType
	}
	if p.FeeRange != nil {
		controls.FeeRange = *p.FeeRange
	}
	if p.SortBy != nil {
		controls.SortBy = *p.SortBy
	}
	if p.CurrentPage != nil {
		controls.CurrentPage = *p.CurrentPage
	}
}

type DoctorsPage struct {
	List  []Doctor `json:"list"`
	Total int      `json:"total"`
}

func IsValidSpecialization(value string) bool {
	return slices.Contains(constvars.Specializations, value)
}

func IsValidConsultationType(value string) bool {
	return slices.Contains(constvars.ConsultationTypes, value)
}
