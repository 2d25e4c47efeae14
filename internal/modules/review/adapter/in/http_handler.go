package in

import (
	"net/http"

	reviewin "homedash/internal/modules/review/port/in"
	"homedash/internal/platform/httpjson"
)

// HTTPHandler serves today's review count. Counter failures are reported in
// the body; the status is always 200.
type HTTPHandler struct {
	usecase      reviewin.Usecase
	cacheControl string
}

func NewHTTPHandler(usecase reviewin.Usecase, cacheControl string) HTTPHandler {
	return HTTPHandler{usecase: usecase, cacheControl: cacheControl}
}

func (h HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.cacheControl, h.usecase.Today(r.Context()))
}
