package handler

import "net/http"

type emptyResponse struct{}

func (emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Empty answers 204 No Content. The preview endpoint uses it for uploads
// that a newer one replaced while they were being read.
func Empty() Response {
	return emptyResponse{}
}
