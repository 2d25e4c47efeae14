package in

import (
	"net/http"

	readingin "homedash/internal/modules/reading/port/in"
	"homedash/internal/platform/httpjson"
)

// HTTPHandler serves the reading payload. It always answers 200.
type HTTPHandler struct {
	usecase      readingin.Usecase
	cacheControl string
}

func NewHTTPHandler(usecase readingin.Usecase, cacheControl string) HTTPHandler {
	return HTTPHandler{usecase: usecase, cacheControl: cacheControl}
}

func (h HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.cacheControl, h.usecase.Resolve(r.Context()))
}
