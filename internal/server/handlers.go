package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/idilsaglam/finetune/internal/model"
)

// HelloHandler answers /hello with plain text.
func HelloHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Hello, World!")
}

// APIHelloHandler answers /api/hello with a JSON greeting for GET and POST.
func APIHelloHandler(g model.Greeting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
				"detail": fmt.Sprintf("Method %q not allowed.", r.Method),
			})
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
