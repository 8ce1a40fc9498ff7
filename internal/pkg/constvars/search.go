package constvars

const (
	SearchQueryParamInput          = "input"
	SearchQueryParamSpecialization = "specialization"
)

// Sort labels exposed to the UI
const (
	SortLabelMostViewed = "most_viewed"
	SortLabelNewest     = "newest"
	SortLabelOldest     = "oldest"
	SortLabelRating     = "rating"
)

// Sort fields understood by the doctors query
const (
	SortFieldDoctorViews = "doctorViews"
	SortFieldCreatedAt   = "createdAt"
	SortFieldDoctorRank  = "doctorRank"

	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"
)

var Specializations = []string{
	"CARDIOLOGIST",
	"DERMATOLOGIST",
	"NEUROLOGIST",
	"PEDIATRICIAN",
	"PSYCHIATRIST",
	"GENERAL_PRACTITIONER",
	"ORTHOPEDIC",
	"GYNECOLOGIST",
	"OPHTHALMOLOGIST",
	"DENTIST",
}

var ConsultationTypes = []string{
	"ONLINE",
	"OFFLINE",
}

// PathDoctorSearch is the page the search input parameter lives on.
const PathDoctorSearch = "/doctors"

// Fallback field names reported when a hydrated value was rejected
const (
	SearchFieldPage                 = "page"
	SearchFieldSort                 = "sort"
	SearchFieldSearch               = "search"
	SearchFieldText                 = "search.text"
	SearchFieldLocation             = "search.location"
	SearchFieldSpecializationList   = "search.specializationList"
	SearchFieldConsultationTypeList = "search.consultationTypeList"
	SearchFieldPricesRange          = "search.pricesRange"
	SearchFieldSpecialization       = "specialization"
)
