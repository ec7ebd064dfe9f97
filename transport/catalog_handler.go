package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *RestHandler) GetCatalogProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetProduct(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
