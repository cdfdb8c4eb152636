package publication

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
)

type CreatePublicationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      uint64 `json:"user_id"`
	TopicID     uint64 `json:"topic_id"`
	ImageURL    string `json:"image_url"`
}

type UpdatePublicationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateImageRequest struct {
	ImageURL string `json:"image_url"`
}

type Handler struct {
	service *PublicationService
}

func NewHandler(service *PublicationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	p := r.PathPrefix("/publications").Subrouter()
	p.HandleFunc("", h.List).Methods(http.MethodGet)
	p.HandleFunc("", h.Create).Methods(http.MethodPost)
	p.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	p.HandleFunc("/topic/{topicId}", h.ListByTopic).Methods(http.MethodGet)
	p.HandleFunc("/topic/{topicId}/count", h.CountByTopic).Methods(http.MethodGet)
	p.HandleFunc("/user/{userId}", h.ListByUser).Methods(http.MethodGet)
	p.HandleFunc("/user/{userId}/count", h.CountByUser).Methods(http.MethodGet)
	p.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	p.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	p.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	p.HandleFunc("/{id}/image", h.UpdateImage).Methods(http.MethodPut)
	p.HandleFunc("/{id}/hide", h.Hide).Methods(http.MethodPut)
	p.HandleFunc("/{id}/show", h.Show).Methods(http.MethodPut)
	p.Handle("/{id}/exists", existence.Handler(h.service.Exists)).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	publications, err := h.service.List(r.Context(), common.QueryBool(r, "include_hidden"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, publications)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, publication)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	publications, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, publications)
}

func (h *Handler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := common.ParseID(r, "topicId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	publications, err := h.service.ListByTopic(r.Context(), topicID, common.QueryBool(r, "include_hidden"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, publications)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	publications, err := h.service.ListByUser(r.Context(), userID, common.QueryBool(r, "include_hidden"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, publications)
}

func (h *Handler) CountByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := common.ParseID(r, "topicId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	count, err := h.service.CountByTopic(r.Context(), topicID)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePublicationRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.Create(r.Context(), CreatePublicationInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		TopicID:     req.TopicID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, publication)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req UpdatePublicationRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, publication)
}

func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req UpdateImageRequest
	if err := common.DecodeOptionalJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.UpdateImage(r.Context(), id, req.ImageURL)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, publication)
}

func (h *Handler) Hide(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req common.HideRequest
	if err := common.DecodeOptionalJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.Hide(r.Context(), id, req.Reason)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, publication)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	publication, err := h.service.Show(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, publication)
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
