package doctorsearch

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"strings"

	"github.com/goccy/go-json"
)

// Defaults is the filter bundle the page starts from.
type Defaults struct {
	Page   int
	Limit  int
	SortBy string
}

type sortOrder struct {
	Field     string
	Direction string
}

var sortOrders = map[string]sortOrder{
	constvars.SortLabelMostViewed: {constvars.SortFieldDoctorViews, constvars.DirectionDesc},
	constvars.SortLabelNewest:     {constvars.SortFieldCreatedAt, constvars.DirectionDesc},
	constvars.SortLabelOldest:     {constvars.SortFieldCreatedAt, constvars.DirectionAsc},
	constvars.SortLabelRating:     {constvars.SortFieldDoctorRank, constvars.DirectionDesc},
}

// SortFor maps a UI sort label to the sort field and direction of the
// doctors query. Unknown labels sort by views.
func SortFor(label string) (string, string) {
	order, ok := sortOrders[label]
	if !ok {
		order = sortOrders[constvars.SortLabelMostViewed]
	}
	return order.Field, order.Direction
}

func labelFor(field, direction string) (string, bool) {
	for label, order := range sortOrders {
		if order.Field == field && order.Direction == direction {
			return label, true
		}
	}
	return "", false
}

// DefaultControls are the controls of a page nobody has touched.
func DefaultControls(defaults Defaults, baseline models.FeeRange) models.SearchControls {
	return models.SearchControls{
		FeeRange:    baseline,
		SortBy:      defaults.SortBy,
		CurrentPage: defaults.Page,
	}
}

// Derive builds the canonical doctors query from the controls. Empty text
// filters and unknown selections are left out, and the fee range only
// appears once it differs from the baseline.
func Derive(controls models.SearchControls, defaults Defaults, baseline models.FeeRange) models.DoctorsInquiry {
	sort, direction := SortFor(controls.SortBy)

	page := controls.CurrentPage
	if page < 1 {
		page = defaults.Page
	}

	search := models.DoctorSearch{
		Text:     strings.TrimSpace(controls.SearchText),
		Location: strings.TrimSpace(controls.Location),
	}
	if specialization := strings.TrimSpace(controls.SelectedSpecialization); models.IsValidSpecialization(specialization) {
		search.SpecializationList = []string{specialization}
	}
	if consultationType := strings.TrimSpace(controls.SelectedConsultationType); models.IsValidConsultationType(consultationType) {
		search.ConsultationTypeList = []string{consultationType}
	}
	if controls.FeeRange != baseline {
		search.PricesRange = &models.PricesRange{
			Start: controls.FeeRange.Min,
			End:   controls.FeeRange.Max,
		}
	}

	return models.DoctorsInquiry{
		Page:      page,
		Limit:     defaults.Limit,
		Sort:      sort,
		Direction: direction,
		Search:    search,
	}
}

// Serialize renders the inquiry the way it is carried by the input parameter.
func Serialize(inquiry models.DoctorsInquiry) string {
	data, err := json.Marshal(inquiry)
	if err != nil {
		return ""
	}
	return string(data)
}
