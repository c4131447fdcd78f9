package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLink_example(t *testing.T) {
	t.Parallel()

	sel := Selection{Category: Electrician, City: "Haifa"}
	assert.Equal(t, "/match?category=Electrician&city=Haifa", sel.MatchLink())
}

func TestMatchLink_encodesEveryCategoryAndCity(t *testing.T) {
	t.Parallel()

	cities := []string{"Haifa", "Tel Aviv", "", "Be'er Sheva", "a&b=c?d", "ירושלים", "100%"}

	for _, c := range Categories() {
		for _, city := range cities {
			link := Selection{Category: c.Key, City: city}.MatchLink()

			u, err := url.Parse(link)
			require.NoError(t, err)
			assert.Equal(t, MatchPath, u.Path)

			q, err := url.ParseQuery(u.RawQuery)
			require.NoError(t, err)
			assert.Len(t, q, 2, link)
			assert.Equal(t, []string{string(c.Key)}, q["category"], link)
			assert.Equal(t, []string{city}, q["city"], link)
		}
	}
}

func TestMatchLink_spaceIsEncoded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/match?category=Plumber&city=Tel+Aviv", MatchLink(Plumber, "Tel Aviv"))
	assert.Equal(t, "/match?category=Plumber&city=a%26b", MatchLink(Plumber, "a&b"))
}

func TestSelection_updatesAreIndependent(t *testing.T) {
	t.Parallel()

	sel := Selection{Category: Painter, City: "Haifa"}

	cityChanged := sel.WithCity("Eilat")
	assert.Equal(t, Painter, cityChanged.Category)
	assert.Equal(t, "Eilat", cityChanged.City)

	catChanged := sel.WithCategory(Cleaner)
	assert.Equal(t, Cleaner, catChanged.Category)
	assert.Equal(t, "Haifa", catChanged.City)

	assert.Equal(t, Selection{Category: Painter, City: "Haifa"}, sel)
}

func TestSelection_WithCategory_rejectsUnknown(t *testing.T) {
	t.Parallel()

	sel := DefaultSelection().WithCategory("Astronaut")
	assert.Equal(t, DefaultSelection(), sel)
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		want  Selection
	}{
		{"empty query uses defaults", "", Selection{Plumber, "Jerusalem"}},
		{"both set", "category=Electrician&city=Haifa", Selection{Electrician, "Haifa"}},
		{"unknown category falls back", "category=Astronaut&city=Haifa", Selection{Plumber, "Haifa"}},
		{"lowercase category is not a match", "category=painter", Selection{Plumber, "Jerusalem"}},
		{"empty city is kept", "category=Cleaner&city=", Selection{Cleaner, ""}},
		{"encoded city", "city=Tel+Aviv", Selection{Plumber, "Tel Aviv"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ParseSelection(q))
		})
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	pro := Pro{Name: "Noam L.", Category: Electrician, City: "Tel Aviv"}

	assert.Equal(t, "/pros/Noam%20L.", ProfileLink(pro))
	assert.Equal(t, "/request?category=Electrician&city=Tel+Aviv", RequestLink(pro))
	assert.Equal(t, "/auth/register?role=PRO", RegisterLink(RolePro))
	assert.Equal(t, "/auth/register?role=CLIENT", RegisterLink(RoleClient))
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	cats := Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, Plumber, cats[0].Key)
	assert.Equal(t, Cleaner, cats[5].Key)
	for _, c := range cats {
		assert.True(t, c.Key.Valid())
	}
	assert.False(t, Category("").Valid())

	assert.Len(t, FeaturedPros(), 3)
	assert.Len(t, Steps(), 3)
	assert.Equal(t, "Find electricians near you with real ratings.", CategoryBlurb(cats[1]))
}
