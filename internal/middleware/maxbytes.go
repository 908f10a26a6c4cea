package middleware

import "net/http"

// MaxBytes caps every request body at limit bytes. Oversized uploads surface
// as *http.MaxBytesError when a handler reads the body, and are reported as
// 413 there; a Content-Length already over the limit is rejected up front.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"File too large. Maximum file size is 200MB"}`))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
