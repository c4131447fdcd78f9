package app

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

const htmlContentType = "text/html; charset=utf-8"

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

// ServeHTTP renders the component into a buffer first so a failed render can
// still be answered with a clean 500.
func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp.Error != nil {
		slog.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "code", resp.Code, "message", resp.Message, "err", resp.Error)
	}

	var buf bytes.Buffer
	if err := resp.Component.Render(r.Context(), &buf); err != nil {
		slog.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "err", err)
		http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = htmlContentType
	}
	w.Header().Set("Content-Type", contentType)

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)

	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "write response", "path", r.URL.Path, "err", err)
	}
}
