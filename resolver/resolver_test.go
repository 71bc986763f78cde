package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/resolver"
	"github.com/radhian/reservation-reconciliation/resolver/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airbnb = consts.PlatformAirbnb

func catalogOf(props ...resolver.PropertyEntry) resolver.Catalog {
	return resolver.NewCatalog("acc-1", props)
}

func property(id int64, name string, aliases ...string) resolver.PropertyEntry {
	return resolver.PropertyEntry{
		PropertyID:      id,
		BillingConfigID: id * 10,
		Name:            name,
		Aliases:         map[string][]string{airbnb: aliases},
	}
}

func TestResolver_ExactAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)

	r := resolver.New(store, 0)
	catalog := catalogOf(property(1, "Nook", "The Nook Terrace"), property(2, "Loft"))

	res, next, err := r.Resolve(context.Background(), "the nook  TERRACE", airbnb, catalog, resolver.Options{AllowAutoLink: true})
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeExact, res.Outcome)
	assert.Equal(t, int64(1), res.PropertyID)
	assert.Equal(t, 100, res.Confidence)
	assert.False(t, res.AliasAdded)
	assert.Equal(t, catalog.Version, next.Version)
}

func TestResolver_CaseSensitiveExactFallsBackToFuzzy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().AddAlias(gomock.Any(), "acc-1", int64(1), airbnb, "the nook terrace").Return(nil)

	r := resolver.New(store, 0)
	catalog := catalogOf(property(1, "Nook", "The Nook Terrace"))

	res, _, err := r.Resolve(context.Background(), "the nook terrace", airbnb, catalog, resolver.Options{AllowAutoLink: true, CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeLearned, res.Outcome)
	assert.Equal(t, 100, res.Confidence)
}

func TestResolver_Threshold(t *testing.T) {
	t.Run("score at threshold links and learns the alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().AddAlias(gomock.Any(), "acc-1", int64(7), airbnb, "beach lofx").Return(nil).Times(1)

		r := resolver.New(store, resolver.DefaultAutoLinkThreshold)
		catalog := catalogOf(property(7, "beach loft", "beach loft"))
		require.Equal(t, 90, resolver.Similarity("beach lofx", "beach loft"))

		res, next, err := r.Resolve(context.Background(), "beach lofx", airbnb, catalog, resolver.Options{AllowAutoLink: true})
		require.NoError(t, err)
		assert.Equal(t, resolver.OutcomeLearned, res.Outcome)
		assert.Equal(t, 90, res.Confidence)
		assert.True(t, res.AliasAdded)
		assert.Equal(t, catalog.Version+1, next.Version)
		assert.Contains(t, res.Property.Aliases[airbnb], "beach lofx")

		// the original catalog value is untouched
		assert.NotContains(t, catalog.Properties[0].Aliases[airbnb], "beach lofx")

		// the learned alias is now an exact match; no further store writes
		again, after, err := r.Resolve(context.Background(), "beach lofx", airbnb, next, resolver.Options{AllowAutoLink: true})
		require.NoError(t, err)
		assert.Equal(t, resolver.OutcomeExact, again.Outcome)
		assert.Equal(t, next.Version, after.Version)
	})

	t.Run("score one below threshold needs review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)

		r := resolver.New(store, resolver.DefaultAutoLinkThreshold)
		catalog := catalogOf(property(8, "sea house", "sea house"))
		require.Equal(t, 89, resolver.Similarity("sea housx", "sea house"))

		res, next, err := r.Resolve(context.Background(), "sea housx", airbnb, catalog, resolver.Options{AllowAutoLink: true})
		require.NoError(t, err)
		assert.Equal(t, resolver.OutcomeNeedsReview, res.Outcome)
		assert.False(t, res.Resolved())
		assert.Equal(t, catalog.Version, next.Version)
	})

	t.Run("auto link disabled skips fuzzy matching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)

		r := resolver.New(store, resolver.DefaultAutoLinkThreshold)
		catalog := catalogOf(property(7, "beach loft", "beach loft"))

		res, _, err := r.Resolve(context.Background(), "beach lofx", airbnb, catalog, resolver.Options{})
		require.NoError(t, err)
		assert.Equal(t, resolver.OutcomeNeedsReview, res.Outcome)
	})
}

func TestResolver_AutoProvision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)

	created := resolver.PropertyEntry{
		PropertyID:      42,
		BillingConfigID: 420,
		Name:            "Casa Azul",
		Aliases:         map[string][]string{airbnb: {"Casa Azul"}},
	}
	store.EXPECT().ProvisionProperty(gomock.Any(), "acc-1", "Casa Azul", airbnb).Return(created, nil)

	r := resolver.New(store, 0)
	catalog := catalogOf(property(1, "Nook", "The Nook Terrace"))

	res, next, err := r.Resolve(context.Background(), "Casa Azul", airbnb, catalog, resolver.Options{AllowAutoLink: true, AllowCreate: true})
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeCreated, res.Outcome)
	assert.Equal(t, int64(42), res.PropertyID)
	assert.Len(t, next.Properties, 2)
	assert.Len(t, catalog.Properties, 1)

	again, _, err := r.Resolve(context.Background(), "Casa Azul", airbnb, next, resolver.Options{AllowAutoLink: true, AllowCreate: true})
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeExact, again.Outcome)
}

func TestResolver_ManualOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().AddAlias(gomock.Any(), "acc-1", int64(2), airbnb, "Nothing Alike").Return(nil)

	r := resolver.New(store, 0)
	catalog := catalogOf(property(1, "Nook", "The Nook Terrace"), property(2, "Loft"))

	opts := resolver.Options{ManualOverrides: map[string]int64{"Nothing Alike": 2, "Ghost": 99}}

	res, _, err := r.Resolve(context.Background(), "Nothing Alike", airbnb, catalog, opts)
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeManual, res.Outcome)
	assert.Equal(t, int64(2), res.PropertyID)

	res, _, err = r.Resolve(context.Background(), "Ghost", airbnb, catalog, opts)
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeNeedsReview, res.Outcome)
}

func TestResolver_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)
	boom := errors.New("connection refused")
	store.EXPECT().ProvisionProperty(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(resolver.PropertyEntry{}, boom)

	r := resolver.New(store, 0)
	_, _, err := r.Resolve(context.Background(), "Somewhere", airbnb, catalogOf(), resolver.Options{AllowCreate: true})
	assert.True(t, errors.Is(err, boom))
}

func TestResolver_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := resolver.New(mocks.NewMockStore(ctrl), 0)
	res, _, err := r.Resolve(context.Background(), "   ", airbnb, catalogOf(property(1, "Nook")), resolver.Options{AllowCreate: true})
	require.NoError(t, err)
	assert.Equal(t, resolver.OutcomeNeedsReview, res.Outcome)
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Ático Centro | 4 huéspedes · Madrid": "atico centro 4 huespedes madrid",
		"  The   Nook—Terrace ":                "the nook terrace",
		"Loft (Sol) #2":                        "loft sol 2",
		"":                                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, resolver.Normalize(in), in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100, resolver.Similarity("Ático Centro", "atico centro"))
	assert.Equal(t, 100, resolver.Similarity("", ""))
	assert.Equal(t, 0, resolver.Similarity("abc", ""))
	assert.Less(t, resolver.Similarity("Casa Azul", "The Nook Terrace"), resolver.DefaultAutoLinkThreshold)
}
