package linktoken

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// stylesheetPrefix and stylesheetSuffix frame the token inside the probe URL.
const (
	stylesheetPrefix = "/client"
	stylesheetSuffix = ".css"
)

// StylesheetURL returns the probe URL for the current token, e.g.
// "/client3x6common9token0.css". The render path embeds this into every page:
//
//	<link rel="stylesheet" href="{{ .StylesheetURL }}" type="text/css" />
func (d *Detector) StylesheetURL(ctx context.Context) string {
	return stylesheetPrefix + d.Token(ctx) + stylesheetSuffix
}

// Handler serves the probe endpoint. It extracts the token from the chi
// route parameter, runs the probe, and always answers 200 with an empty
// text/css body regardless of the internal outcome.
func (d *Detector) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Probe(r.Context(), r, chi.URLParam(r, "token"))

		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.WriteHeader(http.StatusOK)
	}
}

// Routes returns a router exposing GET and POST /client{token}.css, ready to
// be mounted into the hosting service's router:
//
//	router.Mount("/", detector.Routes())
func (d *Detector) Routes() chi.Router {
	r := chi.NewRouter()
	handler := d.Handler()
	r.Get(stylesheetPrefix+"{token}"+stylesheetSuffix, handler)
	r.Post(stylesheetPrefix+"{token}"+stylesheetSuffix, handler)
	return r
}
