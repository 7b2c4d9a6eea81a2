package controller

import (
	"net/http"

	"github.com/go-faster/jx"
)

// WriteJSON writes a pre-encoded JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteError writes the uniform error body {"error": category, "detail": detail}.
func WriteError(w http.ResponseWriter, status int, category, detail string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.Str(category)
	e.FieldStart("detail")
	e.Str(detail)
	e.ObjEnd()

	WriteJSON(w, status, e.Bytes())
}
