package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"

	"github.com/felixbrock/handymatch/internal/domain"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func homeProps(sel domain.Selection) HomeProps {
	return HomeProps{
		Selection:  sel,
		Categories: domain.Categories(),
		Featured:   domain.FeaturedPros(),
		Steps:      domain.Steps(),
		Year:       2026,
	}
}

func TestHome_rendersFixedCardCounts(t *testing.T) {
	t.Parallel()

	selections := []domain.Selection{
		domain.DefaultSelection(),
		{Category: domain.Cleaner, City: ""},
		{Category: domain.Painter, City: "Tel Aviv"},
	}

	for _, sel := range selections {
		doc := render(t, Home(homeProps(sel)))

		assert.Equal(t, 6, doc.Find(`[data-card="category"]`).Length())
		assert.Equal(t, 3, doc.Find(`[data-card="pro"]`).Length())
		assert.Equal(t, 3, doc.Find(`[data-card="preview"]`).Length())
		assert.Equal(t, 3, doc.Find(`[data-card="step"]`).Length())
		assert.Equal(t, 6, doc.Find(`select[name="category"] option`).Length())
	}
}

func TestHome_reflectsSelection(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(homeProps(domain.Selection{Category: domain.Electrician, City: "Haifa"})))

	selected := doc.Find(`select[name="category"] option[selected]`)
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "Electrician", selected.AttrOr("value", ""))

	assert.Equal(t, "Haifa", doc.Find(`input[name="city"]`).AttrOr("value", ""))
	assert.Equal(t, "e.g., Jerusalem", doc.Find(`input[name="city"]`).AttrOr("placeholder", ""))
	assert.Equal(t, "/match", doc.Find(`form#search`).AttrOr("action", ""))

	assert.Equal(t, "/match?category=Electrician&city=Haifa", doc.Find(`#search-now`).AttrOr("href", ""))
	assert.Equal(t, "/match?category=Electrician&city=Haifa", doc.Find(`form#search a#search-link`).AttrOr("href", ""))
	assert.Equal(t, "Search", doc.Find(`#search-link`).Text())
}

func TestHome_liveSearchWiring(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(homeProps(domain.DefaultSelection())))

	form := doc.Find("form#search")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, 1, form.Find(`select#category[name="category"]`).Length())
	assert.Equal(t, 1, form.Find(`input#city[name="city"]`).Length())

	var keys []string
	doc.Find(`[data-card="category"]`).Each(func(_ int, s *goquery.Selection) {
		keys = append(keys, s.AttrOr("data-category", ""))
	})
	assert.Equal(t, []string{"Plumber", "Electrician", "Carpenter", "Painter", "Handyman", "Cleaner"}, keys)

	var linked []string
	doc.Find("[data-match-link]").Each(func(_ int, s *goquery.Selection) {
		linked = append(linked, s.AttrOr("id", ""))
	})
	assert.ElementsMatch(t, []string{"search-link", "search-now"}, linked)

	script := doc.Find(`script[src="/static/search.js"]`)
	require.Equal(t, 1, script.Length())
	_, deferred := script.Attr("defer")
	assert.True(t, deferred)
}

func TestHome_categoryCardsCarryCity(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(homeProps(domain.Selection{Category: domain.Plumber, City: "Tel Aviv"})))

	var hrefs []string
	doc.Find(`[data-card="category"]`).Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})

	assert.Equal(t, []string{
		"/match?category=Plumber&city=Tel+Aviv",
		"/match?category=Electrician&city=Tel+Aviv",
		"/match?category=Carpenter&city=Tel+Aviv",
		"/match?category=Painter&city=Tel+Aviv",
		"/match?category=Handyman&city=Tel+Aviv",
		"/match?category=Cleaner&city=Tel+Aviv",
	}, hrefs)
}

func TestHome_proCards(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(homeProps(domain.DefaultSelection())))

	card := doc.Find(`[data-card="pro"]`).First()
	assert.Contains(t, card.Text(), "Ahmad S.")
	assert.Contains(t, card.Text(), "Plumber • Jerusalem")
	assert.Contains(t, card.Text(), "₪220/hr")
	assert.Contains(t, card.Text(), "4.8")
	assert.Contains(t, card.Text(), "(132 reviews)")

	links := card.Find("a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "/pros/Ahmad%20S.", links.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "/request?category=Plumber&city=Jerusalem", links.Eq(1).AttrOr("href", ""))
}

func TestHome_escapesCityText(t *testing.T) {
	t.Parallel()

	city := `"><script>alert(1)</script>`
	doc := render(t, Home(homeProps(domain.Selection{Category: domain.Plumber, City: city})))

	assert.Equal(t, 2, doc.Find("script").Length(), "only the stylesheet and search scripts are expected")
	assert.Zero(t, doc.Find("script:not([src])").Length())
	assert.Equal(t, city, doc.Find(`input[name="city"]`).AttrOr("value", ""))
}

func TestHome_footerAndCTA(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(homeProps(domain.DefaultSelection())))

	assert.Contains(t, doc.Find("footer").Text(), "© 2026 HandyMatch. All rights reserved.")

	var hrefs []string
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	for _, want := range []string{
		"/", "#categories", "#how", "#pros", "/auth/login", "/auth/register",
		"/auth/register?role=PRO", "/auth/register?role=CLIENT",
		"/categories", "/privacy", "/terms", "/contact",
	} {
		assert.Contains(t, hrefs, want)
	}
}

func TestComingSoonAndError(t *testing.T) {
	t.Parallel()

	doc := render(t, ComingSoon("Privacy", "/privacy"))
	assert.Equal(t, "Privacy", doc.Find("h1").Text())
	assert.Equal(t, "/privacy", doc.Find("code").Text())

	doc = render(t, Error(404, "Not found", "Sorry, we couldn't find the page you were looking for."))
	assert.Equal(t, "Not found", doc.Find("h1").Text())
	assert.Contains(t, doc.Text(), "404")
}

func TestHref_sanitizesUnsafeSchemes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, fromNode(h.A(href("javascript:alert(1)"))).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "javascript:")

	buf.Reset()
	require.NoError(t, fromNode(h.A(href("/match?category=Plumber"))).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `href="/match?category=Plumber"`)
}
