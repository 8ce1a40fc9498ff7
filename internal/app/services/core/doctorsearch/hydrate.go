package doctorsearch

import (
	"math"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type HydrateResult struct {
	Controls models.SearchControls
	Inquiry  models.DoctorsInquiry
	// UsedDefaults is set when the input parameter is missing or is not JSON.
	UsedDefaults bool
	// Fallbacks names the fields that were present but rejected.
	Fallbacks []string
}

// Hydrate reads the controls back from a page query. It never fails: every
// field that is missing or malformed keeps its default.
func Hydrate(query url.Values, defaults Defaults, baseline models.FeeRange) HydrateResult {
	h := hydrator{controls: DefaultControls(defaults, baseline)}

	var fields map[string]json.RawMessage
	raw := query.Get(constvars.SearchQueryParamInput)
	if raw == "" || json.Unmarshal([]byte(raw), &fields) != nil || fields == nil {
		h.usedDefaults = true
	} else {
		h.readBundle(fields)
	}

	h.readSpecializationParam(query)

	return HydrateResult{
		Controls:     h.controls,
		Inquiry:      Derive(h.controls, defaults, baseline),
		UsedDefaults: h.usedDefaults,
		Fallbacks:    h.fallbacks,
	}
}

type hydrator struct {
	controls                models.SearchControls
	usedDefaults            bool
	fallbacks               []string
	bundleHasSpecialization bool
}

func (h *hydrator) fallback(field string) {
	h.fallbacks = append(h.fallbacks, field)
}

func (h *hydrator) readBundle(fields map[string]json.RawMessage) {
	if raw, ok := fields["page"]; ok {
		page, valid := parseNumber(raw)
		if valid && page >= 1 {
			h.controls.CurrentPage = int(page)
		} else {
			h.fallback(constvars.SearchFieldPage)
		}
	}

	rawSort, hasSort := fields["sort"]
	rawDirection, hasDirection := fields["direction"]
	if hasSort || hasDirection {
		var sort, direction string
		label, ok := "", false
		if parseString(rawSort, &sort) && parseString(rawDirection, &direction) {
			label, ok = labelFor(sort, direction)
		}
		if ok {
			h.controls.SortBy = label
		} else {
			h.fallback(constvars.SearchFieldSort)
		}
	}

	rawSearch, ok := fields["search"]
	if !ok || isNull(rawSearch) {
		return
	}
	var search map[string]json.RawMessage
	if json.Unmarshal(rawSearch, &search) != nil || search == nil {
		h.fallback(constvars.SearchFieldSearch)
		return
	}

	if raw, ok := search["text"]; ok {
		if !parseString(raw, &h.controls.SearchText) {
			h.fallback(constvars.SearchFieldText)
		}
	}
	if raw, ok := search["location"]; ok {
		if !parseString(raw, &h.controls.Location) {
			h.fallback(constvars.SearchFieldLocation)
		}
	}
	if raw, ok := search["specializationList"]; ok {
		if value, found := firstValid(raw, models.IsValidSpecialization); found {
			h.controls.SelectedSpecialization = value
			h.bundleHasSpecialization = true
		} else {
			h.fallback(constvars.SearchFieldSpecializationList)
		}
	}
	if raw, ok := search["consultationTypeList"]; ok {
		if value, found := firstValid(raw, models.IsValidConsultationType); found {
			h.controls.SelectedConsultationType = value
		} else {
			h.fallback(constvars.SearchFieldConsultationTypeList)
		}
	}
	if raw, ok := search["pricesRange"]; ok {
		if feeRange, valid := parsePricesRange(raw); valid {
			h.controls.FeeRange = feeRange
		} else {
			h.fallback(constvars.SearchFieldPricesRange)
		}
	}
}

// readSpecializationParam applies the standalone specialization parameter
// of browse links. The bundle's own specialization wins when it is valid.
func (h *hydrator) readSpecializationParam(query url.Values) {
	if !query.Has(constvars.SearchQueryParamSpecialization) {
		return
	}
	value := strings.TrimSpace(query.Get(constvars.SearchQueryParamSpecialization))
	if !models.IsValidSpecialization(value) {
		h.fallback(constvars.SearchFieldSpecialization)
		return
	}
	if !h.bundleHasSpecialization {
		h.controls.SelectedSpecialization = value
	}
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func parseString(raw json.RawMessage, out *string) bool {
	if raw == nil || isNull(raw) {
		return false
	}
	var value string
	if json.Unmarshal(raw, &value) != nil {
		return false
	}
	*out = value
	return true
}

// parseNumber accepts a JSON number or a numeric string, finite only.
func parseNumber(raw json.RawMessage) (float64, bool) {
	if raw == nil || isNull(raw) {
		return 0, false
	}

	var number float64
	if json.Unmarshal(raw, &number) != nil {
		var text string
		if json.Unmarshal(raw, &text) != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, false
		}
		number = parsed
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

// firstValid reads a string or a list of strings and returns the first
// element accepted by valid.
func firstValid(raw json.RawMessage, valid func(string) bool) (string, bool) {
	var single string
	if json.Unmarshal(raw, &single) == nil {
		single = strings.TrimSpace(single)
		return single, valid(single)
	}

	var list []interface{}
	if json.Unmarshal(raw, &list) != nil {
		return "", false
	}
	for _, item := range list {
		value, ok := item.(string)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if valid(value) {
			return value, true
		}
	}
	return "", false
}

func parsePricesRange(raw json.RawMessage) (models.FeeRange, bool) {
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil || fields == nil {
		return models.FeeRange{}, false
	}
	start, ok := parseNumber(fields["start"])
	if !ok {
		return models.FeeRange{}, false
	}
	end, ok := parseNumber(fields["end"])
	if !ok {
		return models.FeeRange{}, false
	}
	return models.FeeRange{Min: start, Max: end}, true
}
