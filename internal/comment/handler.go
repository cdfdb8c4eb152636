package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
)

type CreateCommentRequest struct {
	Content       string `json:"content"`
	UserID        uint64 `json:"user_id"`
	PublicationID uint64 `json:"publication_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type Handler struct {
	service *CommentService
}

func NewHandler(service *CommentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	c := r.PathPrefix("/comments").Subrouter()
	c.HandleFunc("", h.List).Methods(http.MethodGet)
	c.HandleFunc("", h.Create).Methods(http.MethodPost)
	c.HandleFunc("/publication/{publicationId}", h.ListByPublication).Methods(http.MethodGet)
	c.HandleFunc("/publication/{publicationId}/count", h.CountByPublication).Methods(http.MethodGet)
	c.HandleFunc("/user/{userId}", h.ListByUser).Methods(http.MethodGet)
	c.HandleFunc("/user/{userId}/count", h.CountByUser).Methods(http.MethodGet)
	c.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	c.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	c.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	c.HandleFunc("/{id}/hide", h.Hide).Methods(http.MethodPut)
	c.HandleFunc("/{id}/show", h.Show).Methods(http.MethodPut)
	c.Handle("/{id}/exists", existence.Handler(h.service.Exists)).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.List(r.Context())
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, comments)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	comment, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comment)
}

// ListByPublication hides moderated comments unless ?include_hidden=true.
func (h *Handler) ListByPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := common.ParseID(r, "publicationId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	comments, err := h.service.ListByPublication(r.Context(), publicationID, common.QueryBool(r, "include_hidden"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, comments)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "userId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	comments, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, comments)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	comment, err := h.service.Create(r.Context(), req.Content, req.UserID, req.PublicationID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, comment)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req UpdateCommentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	comment, err := h.service.Update(r.Context(), id, req.Content)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comment)
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

	comment, err := h.service.Hide(r.Context(), id, req.Reason)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comment)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	comment, err := h.service.Show(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comment)
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
