package rest

import "net/http"

// Routes serves mux, answering requests it has no route for with the JSON
// error body instead of the mux's plain-text 404 and 405 responses.
func Routes(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, pattern := mux.Handler(r); pattern == "" {
			h.ServeHTTP(&unroutedWriter{ResponseWriter: w}, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// unroutedWriter replaces the body of the mux's 404 and 405 replies.
// Headers set before WriteHeader (Allow on 405) are kept.
type unroutedWriter struct {
	http.ResponseWriter
	replaced bool
}

func (u *unroutedWriter) WriteHeader(status int) {
	switch status {
	case http.StatusNotFound:
		u.replaced = true
		writeError(u.ResponseWriter, status, kindNotFound, "no such resource")
	case http.StatusMethodNotAllowed:
		u.replaced = true
		writeError(u.ResponseWriter, status, kindMethodNotAllowed, "method not allowed")
	default:
		u.ResponseWriter.WriteHeader(status)
	}
}

func (u *unroutedWriter) Write(p []byte) (int, error) {
	if u.replaced {
		return len(p), nil
	}
	return u.ResponseWriter.Write(p)
}

func (u *unroutedWriter) Unwrap() http.ResponseWriter {
	return u.ResponseWriter
}
