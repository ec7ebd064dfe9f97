package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/utils/errors"
)

// InternalMiddleware checks for a static API key in the Authorization
// header; these routes are only for trusted sibling services.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
