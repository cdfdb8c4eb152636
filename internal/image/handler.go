package image

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
	"qualifygym/internal/media"
)

const (
	formFileField  = "file"
	multipartSlack = 1 << 20
)

type DeletedResponse struct {
	Deleted int `json:"deleted"`
}

type Handler struct {
	service *ImageService
}

func NewHandler(service *ImageService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	i := r.PathPrefix("/images").Subrouter()
	i.HandleFunc("/profile/{userId}", h.UploadProfile).Methods(http.MethodPost)
	i.HandleFunc("/profile/{userId}", h.GetProfile).Methods(http.MethodGet)
	i.HandleFunc("/profile/{userId}", h.DeleteProfile).Methods(http.MethodDelete)
	i.HandleFunc("/publication/{publicationId}", h.UploadPublication).Methods(http.MethodPost)
	i.HandleFunc("/publication/{publicationId}", h.ListByPublication).Methods(http.MethodGet)
	i.HandleFunc("/publication/{publicationId}", h.DeleteByPublication).Methods(http.MethodDelete)
	i.HandleFunc("/publication/{publicationId}/count", h.CountByPublication).Methods(http.MethodGet)
	i.HandleFunc("/user/{userId}/count", h.CountByUser).Methods(http.MethodGet)
	i.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	i.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	i.HandleFunc("/{id}/content", h.Content).Methods(http.MethodGet, http.MethodHead)
	i.Handle("/{id}/exists", existence.Handler(h.service.Exists)).Methods(http.MethodGet)
}

// readUpload pulls the "file" part out of a multipart request. The returned
// close func releases the part.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (Upload, func(), error) {
	maxBytes := h.service.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartSlack)
	if err := r.ParseMultipartForm(maxBytes + multipartSlack); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Upload{}, nil, common.NewValidationError(fmt.Sprintf("file exceeds the maximum size of %d MB", maxBytes>>20))
		}
		return Upload{}, nil, common.NewValidationError("request must be multipart/form-data")
	}

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		return Upload{}, nil, common.NewValidationError("file is required")
	}

	return Upload{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	}, func() { file.Close() }, nil
}

func (h *Handler) UploadProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	up, closeFile, err := h.readUpload(w, r)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	defer closeFile()

	image, err := h.service.UploadProfile(r.Context(), userID, up)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, image)
}

func (h *Handler) UploadPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := common.ParseID(r, "publicationId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	up, closeFile, err := h.readUpload(w, r)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	defer closeFile()

	userID, err := strconv.ParseUint(r.FormValue("user_id"), 10, 64)
	if err != nil || userID == 0 {
		common.RespondError(w, r, common.NewValidationError("user_id must be a positive integer"))
		return
	}

	image, err := h.service.UploadPublication(r.Context(), publicationID, userID, up)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, image)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	image, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, image)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	image, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, image)
}

func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	image, reader, err := h.service.OpenContent(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	defer reader.Close()

	media.ServeContent(w, r, media.Content{
		Reader:   reader,
		Filename: image.Filename,
		MimeType: image.MimeType,
		Size:     image.Size,
	})
}

func (h *Handler) ListByPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := common.ParseID(r, "publicationId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	images, err := h.service.ListByPublication(r.Context(), publicationID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, images)
}

func (h *Handler) CountByPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := common.ParseID(r, "publicationId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	count, err := h.service.CountByPublication(r.Context(), publicationID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondCount(w, count)
}

func (h *Handler) CountByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	count, err := h.service.CountByUser(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondCount(w, count)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		common.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	if err := h.service.DeleteProfile(r.Context(), userID); err != nil {
		common.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteByPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := common.ParseID(r, "publicationId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	deleted, err := h.service.DeleteByPublication(r.Context(), publicationID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, DeletedResponse{Deleted: deleted})
}
