package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/felixbrock/handymatch/internal/components"
	"github.com/felixbrock/handymatch/internal/domain"
)

const (
	healthPath  = "/healthz"
	metricsPath = "/metrics"
	staticPath  = "/static/"
)

// placeholderPages are linked from the landing page but not built yet.
var placeholderPages = map[string]string{
	domain.MatchPath:      "Matches",
	domain.RequestPath:    "Request a pro",
	domain.CategoriesPath: "All categories",
	domain.LoginPath:      "Log in",
	domain.RegisterPath:   "Sign up",
	"/privacy":            "Privacy",
	"/terms":              "Terms",
	"/contact":            "Contact",
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	props := components.HomeProps{
		Selection:  domain.ParseSelection(r.URL.Query()),
		Categories: a.Catalog.Categories(),
		Featured:   a.Catalog.Featured(),
		Steps:      a.Catalog.Steps(),
		Year:       a.now().Year(),
	}

	return &ComponentResponse{Component: a.ComponentBuilder.Home(props), Code: 200, Message: "OK", ContentType: htmlContentType}
}

func (a *App) placeholder(title string) ComponentHandler {
	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		return &ComponentResponse{Component: a.ComponentBuilder.ComingSoon(title, r.URL.RequestURI()), Code: 200, Message: "OK", ContentType: htmlContentType}
	}
}

func (a *App) pro(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	name := r.PathValue("name")

	p, ok := a.Catalog.FindPro(name)
	if !ok {
		return a.errorResponse(get404(), fmt.Errorf("pro %q not found", name))
	}

	return &ComponentResponse{Component: a.ComponentBuilder.ComingSoon(p.Name, r.URL.RequestURI()), Code: 200, Message: "OK", ContentType: htmlContentType}
}

// fallback serves every path the mux has no route for. Paths with a GET route
// hit with another method answer 405, everything else 404.
func (a *App) fallback(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.Method != http.MethodGet && r.Method != http.MethodHead && a.routed(r.URL.Path) {
		w.Header().Set("Allow", "GET, HEAD")
		return a.errorResponse(get405(), nil)
	}

	return a.errorResponse(get404(), nil)
}

// routed reports whether path matches one of the GET patterns in Handler.
func (a *App) routed(path string) bool {
	switch path {
	case "/", healthPath:
		return true
	case metricsPath:
		return a.Config.MetricsEnabled
	}
	if _, ok := placeholderPages[path]; ok {
		return true
	}
	if strings.HasPrefix(path, staticPath) {
		return true
	}
	name, ok := strings.CutPrefix(path, domain.ProsPath)
	return ok && name != "" && !strings.Contains(name, "/")
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (a *App) errorResponse(e errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Error:       err,
		Message:     e.Msg,
		Code:        e.Code,
		ContentType: htmlContentType,
		Component:   a.ComponentBuilder.Error(e.Code, e.Title, e.Msg),
	}
}

func (a *App) errorHandler(e errCtx, err error) ComponentHandler {
	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		return a.errorResponse(e, err)
	}
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}
