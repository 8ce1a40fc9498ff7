package doctorsearch

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/shared/navigation"
	"medicare-portal/internal/pkg/constvars"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSynchronizer(query url.Values) (*Synchronizer, *navigation.QueryRouter) {
	router := navigation.NewQueryRouter(constvars.PathDoctorSearch, query)
	return NewSynchronizer(router, testDefaults, testBaseline, zap.NewNop()), router
}

func TestSynchronizer_UntouchedDefaultsNeverWriteTheURL(t *testing.T) {
	synchronizer, router := newTestSynchronizer(url.Values{})

	assert.True(t, synchronizer.Sync())
	assert.False(t, synchronizer.WriteBack())
	assert.False(t, synchronizer.Update(func(controls *models.SearchControls) {}))

	assert.Nil(t, router.Replaced())
	assert.False(t, router.Query().Has(constvars.SearchQueryParamInput))
}

func TestSynchronizer_WriteBackSuppressedBeforeHydration(t *testing.T) {
	synchronizer, router := newTestSynchronizer(url.Values{})

	replaced := synchronizer.Update(func(controls *models.SearchControls) {
		controls.SearchText = "heart"
	})

	assert.False(t, replaced)
	assert.False(t, synchronizer.Hydrated())
	assert.Nil(t, router.Replaced())
}

func TestSynchronizer_ChangeReplacesInputAndKeepsOtherParams(t *testing.T) {
	synchronizer, router := newTestSynchronizer(url.Values{"utm_source": {"mail"}})
	synchronizer.Sync()

	replaced := synchronizer.Update(func(controls *models.SearchControls) {
		controls.FeeRange.Max = 500
	})

	require.True(t, replaced)
	replace := router.Replaced()
	require.NotNil(t, replace)
	assert.False(t, replace.Full)
	assert.False(t, replace.Scroll)

	target, err := url.Parse(replace.Target)
	require.NoError(t, err)
	assert.Equal(t, constvars.PathDoctorSearch, target.Path)
	assert.Equal(t, "mail", target.Query().Get("utm_source"))
	assert.Equal(t, Serialize(synchronizer.Inquiry()), target.Query().Get(constvars.SearchQueryParamInput))
	assert.Contains(t, target.Query().Get(constvars.SearchQueryParamInput), `"pricesRange":{"start":0,"end":500}`)
}

func TestSynchronizer_EqualParameterIsLeftAlone(t *testing.T) {
	controls := DefaultControls(testDefaults, testBaseline)
	controls.SelectedSpecialization = "DENTIST"
	synchronizer, router := newTestSynchronizer(inputQuery(Serialize(Derive(controls, testDefaults, testBaseline))))
	synchronizer.Sync()

	assert.False(t, synchronizer.WriteBack())
	assert.Nil(t, router.Replaced())
}

func TestSynchronizer_NonCanonicalParameterIsRewritten(t *testing.T) {
	synchronizer, router := newTestSynchronizer(inputQuery(`{"page":2,"limit":10,"sort":"createdAt","direction":"DESC","search":{"specializationList":"CARDIOLOGIST"}}`))
	synchronizer.Sync()

	assert.True(t, synchronizer.WriteBack())
	require.NotNil(t, router.Replaced())
	assert.Equal(t, Serialize(synchronizer.Inquiry()), router.Query().Get(constvars.SearchQueryParamInput))
}

func TestSynchronizer_ExternalChangeRehydrates(t *testing.T) {
	synchronizer, router := newTestSynchronizer(url.Values{})
	synchronizer.Sync()

	synchronizer.Update(func(controls *models.SearchControls) {
		controls.SortBy = constvars.SortLabelRating
	})
	assert.False(t, synchronizer.Sync(), "own writes are not external changes")

	router.Replace(inputQuery(`{"page":4,"sort":"createdAt","direction":"ASC"}`))

	assert.True(t, synchronizer.Sync())
	assert.Equal(t, constvars.SortLabelOldest, synchronizer.Controls().SortBy)
	assert.Equal(t, 4, synchronizer.Controls().CurrentPage)
}
