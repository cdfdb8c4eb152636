package topic

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
)

type TopicRequest struct {
	Name     string `json:"name"`
	EstadoID uint64 `json:"estado_id"`
}

type Handler struct {
	service *TopicService
}

func NewHandler(service *TopicService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	t := r.PathPrefix("/topics").Subrouter()
	t.HandleFunc("", h.List).Methods(http.MethodGet)
	t.HandleFunc("", h.Create).Methods(http.MethodPost)
	t.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	t.HandleFunc("/state/{stateId}", h.ListByEstado).Methods(http.MethodGet)
	t.HandleFunc("/state/{stateId}/count", h.CountByEstado).Methods(http.MethodGet)
	t.HandleFunc("/name/{name}", h.GetByName).Methods(http.MethodGet)
	t.HandleFunc("/name/{name}/exists", h.ExistsByName).Methods(http.MethodGet)
	t.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	t.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	t.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	t.Handle("/{id}/exists", existence.Handler(h.service.Exists)).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.List(r.Context())
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, topics)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	topic, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, topic)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, topics)
}

func (h *Handler) ListByEstado(w http.ResponseWriter, r *http.Request) {
	estadoID, err := common.ParseID(r, "stateId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	topics, err := h.service.ListByEstado(r.Context(), estadoID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, topics)
}

func (h *Handler) CountByEstado(w http.ResponseWriter, r *http.Request) {
	estadoID, err := common.ParseID(r, "stateId")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	count, err := h.service.CountByEstado(r.Context(), estadoID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondCount(w, count)
}

func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	topic, err := h.service.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, topic)
}

func (h *Handler) ExistsByName(w http.ResponseWriter, r *http.Request) {
	exists, err := h.service.ExistsByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, common.ExistsResponse{Exists: exists})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	topic, err := h.service.Create(r.Context(), req.Name, req.EstadoID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, topic)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req TopicRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	topic, err := h.service.Update(r.Context(), id, req.Name, req.EstadoID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, topic)
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
