package domain

import (
	"net/url"
	"strings"
)

const (
	MatchPath      = "/match"
	RequestPath    = "/request"
	ProsPath       = "/pros/"
	RegisterPath   = "/auth/register"
	LoginPath      = "/auth/login"
	CategoriesPath = "/categories"
)

// queryLink joins path and the encoded query. url.Values sorts its keys,
// so category always precedes city.
func queryLink(path string, q url.Values) string {
	return path + "?" + q.Encode()
}

func MatchLink(c Category, city string) string {
	return queryLink(MatchPath, url.Values{
		"category": {string(c)},
		"city":     {city},
	})
}

func RequestLink(p Pro) string {
	return queryLink(RequestPath, url.Values{
		"category": {string(p.Category)},
		"city":     {p.City},
	})
}

func ProfileLink(p Pro) string {
	return ProsPath + url.PathEscape(p.Name)
}

func RegisterLink(r Role) string {
	return queryLink(RegisterPath, url.Values{"role": {string(r)}})
}

// CategoryBlurb is the card subtitle, e.g. "Find plumbers near you with real ratings."
func CategoryBlurb(c CategoryInfo) string {
	return "Find " + strings.ToLower(c.Label) + "s near you with real ratings."
}
