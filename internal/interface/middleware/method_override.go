package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites POST requests carrying a _method form field to
// the verb the form intends (PUT, PATCH or DELETE). HTML forms can only
// submit GET and POST, so the edit and delete pages tunnel their real
// verb through this field.
//
// Must be installed on the http.Handler level (wrapping the engine), not
// as a gin middleware: gin has already matched the route by the time its
// middleware chain runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			ct := r.Header.Get("Content-Type")
			if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
				if err := r.ParseForm(); err == nil {
					switch strings.ToUpper(r.PostFormValue("_method")) {
					case http.MethodPut:
						r.Method = http.MethodPut
					case http.MethodPatch:
						r.Method = http.MethodPatch
					case http.MethodDelete:
						r.Method = http.MethodDelete
					}
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
