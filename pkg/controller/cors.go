package controller

import (
	"net/http"
	"slices"
	"strings"
)

const wildcard = "*"

// defaultCORSMethods is what a "*" method allow-list expands to.
var defaultCORSMethods = []string{ //nolint: gochecknoglobals
	http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions,
	http.MethodPatch, http.MethodPost, http.MethodPut,
}

// CORSOptions lists what cross-origin callers are allowed to do. A list
// containing "*" allows everything.
type CORSOptions struct {
	AllowOrigins     []string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string
}

func (o CORSOptions) originAllowed(origin string) bool {
	return slices.Contains(o.AllowOrigins, wildcard) || slices.Contains(o.AllowOrigins, origin)
}

// WithCORS returns a middleware that sets CORS headers for allowed origins and
// short-circuits OPTIONS preflight requests with 204 No Content. Requests
// from origins outside the allow-list pass through without CORS headers, and
// their preflights are answered with 403.
//
// With a wildcard origin and credentials enabled the request's own origin is
// echoed, since browsers reject "*" on credentialed requests.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := opts.AllowMethods
	if slices.Contains(methods, wildcard) {
		methods = defaultCORSMethods
	}
	allowMethods := strings.Join(methods, ", ")
	anyHeader := slices.Contains(opts.AllowHeaders, wildcard)
	allowHeaders := strings.Join(opts.AllowHeaders, ", ")
	anyOrigin := slices.Contains(opts.AllowOrigins, wildcard)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			preflight := r.Method == http.MethodOptions

			if origin != "" && !opts.originAllowed(origin) {
				if preflight {
					w.WriteHeader(http.StatusForbidden)

					return
				}
				next.ServeHTTP(w, r)

				return
			}

			h := w.Header()
			switch {
			case anyOrigin && !opts.AllowCredentials:
				h.Set("Access-Control-Allow-Origin", wildcard)
			case origin != "":
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			case anyOrigin:
				h.Set("Access-Control-Allow-Origin", wildcard)
			}
			if opts.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			// handle preflight requests quickly
			if preflight {
				h.Set("Access-Control-Allow-Methods", allowMethods)
				if requested := r.Header.Get("Access-Control-Request-Headers"); anyHeader && requested != "" {
					h.Set("Access-Control-Allow-Headers", requested)
				} else if !anyHeader && allowHeaders != "" {
					h.Set("Access-Control-Allow-Headers", allowHeaders)
				}
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
