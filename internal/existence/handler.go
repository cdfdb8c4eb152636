package existence

import (
	"context"
	"net/http"

	"qualifygym/internal/common"
)

// LookupFunc answers an exists query against local storage.
type LookupFunc func(ctx context.Context, id uint64) (bool, error)

// Handler serves GET /{resource}/{id}/exists for the owning service.
func Handler(lookup LookupFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := common.ParseID(r, "id")
		if err != nil {
			common.RespondError(w, r, err)
			return
		}

		exists, err := lookup(r.Context(), id)
		if err != nil {
			common.RespondError(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, common.ExistsResponse{Exists: exists})
	}
}
