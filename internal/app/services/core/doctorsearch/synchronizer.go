package doctorsearch

import (
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

// Synchronizer keeps the search controls and the input parameter of the page
// in agreement. The URL is read once it is available and again whenever it
// changes from outside; control changes are written back with a history
// replace.
type Synchronizer struct {
	mu       sync.Mutex
	router   contracts.Router
	defaults Defaults
	baseline models.FeeRange
	log      *zap.Logger

	controls models.SearchControls
	hydrated bool
	observed observedQuery
}

type observedQuery struct {
	input          string
	specialization string
}

func NewSynchronizer(router contracts.Router, defaults Defaults, baseline models.FeeRange, logger *zap.Logger) *Synchronizer {
	return &Synchronizer{
		router:   router,
		defaults: defaults,
		baseline: baseline,
		log:      logger,
		controls: DefaultControls(defaults, baseline),
	}
}

// Hydrate reads the controls from the current URL and enables write back.
func (s *Synchronizer) Hydrate() HydrateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate()
}

func (s *Synchronizer) hydrate() HydrateResult {
	query := s.router.Query()
	result := Hydrate(query, s.defaults, s.baseline)
	s.controls = result.Controls
	s.hydrated = true
	s.observed = observedQuery{
		input:          query.Get(constvars.SearchQueryParamInput),
		specialization: query.Get(constvars.SearchQueryParamSpecialization),
	}

	if len(result.Fallbacks) > 0 {
		s.log.Debug("Synchronizer.Hydrate fell back to defaults",
			zap.Strings(constvars.LoggingInputKey, result.Fallbacks),
			zap.Bool(constvars.LoggingUsedDefaultsKey, result.UsedDefaults),
		)
	}
	return result
}

// Sync hydrates on first availability of the URL and after external URL
// changes such as back navigation. It reports whether it hydrated.
func (s *Synchronizer) Sync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		query := s.router.Query()
		current := observedQuery{
			input:          query.Get(constvars.SearchQueryParamInput),
			specialization: query.Get(constvars.SearchQueryParamSpecialization),
		}
		if current == s.observed {
			return false
		}
	}

	s.hydrate()
	return true
}

// Update changes the controls and writes the derived query back.
func (s *Synchronizer) Update(fn func(controls *models.SearchControls)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.controls)
	return s.writeBack()
}

// WriteBack pushes the derived query to the URL when it differs from it.
// It reports whether the URL was replaced.
func (s *Synchronizer) WriteBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeBack()
}

func (s *Synchronizer) writeBack() bool {
	if !s.hydrated {
		return false
	}

	derived := Serialize(Derive(s.controls, s.defaults, s.baseline))
	query := s.router.Query()

	if query.Has(constvars.SearchQueryParamInput) {
		if query.Get(constvars.SearchQueryParamInput) == derived {
			return false
		}
	} else if derived == Serialize(Derive(DefaultControls(s.defaults, s.baseline), s.defaults, s.baseline)) {
		return false
	}

	query.Set(constvars.SearchQueryParamInput, derived)
	s.router.Replace(query)
	s.observed.input = derived

	s.log.Debug("Synchronizer.WriteBack replaced query",
		zap.String(constvars.LoggingInputKey, derived),
	)
	return true
}

func (s *Synchronizer) Controls() models.SearchControls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

func (s *Synchronizer) Inquiry() models.DoctorsInquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Derive(s.controls, s.defaults, s.baseline)
}

func (s *Synchronizer) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}
