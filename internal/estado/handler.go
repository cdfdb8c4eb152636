package estado

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
)

type EstadoRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	service *EstadoService
}

func NewHandler(service *EstadoService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	s := r.PathPrefix("/states").Subrouter()
	s.HandleFunc("", h.List).Methods(http.MethodGet)
	s.HandleFunc("", h.Create).Methods(http.MethodPost)
	s.HandleFunc("/get-or-create", h.GetOrCreate).Methods(http.MethodPost)
	s.HandleFunc("/name/{name}", h.GetByName).Methods(http.MethodGet)
	s.HandleFunc("/name/{name}/exists", h.ExistsByName).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	s.Handle("/{id}/exists", existence.Handler(h.service.Exists)).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	estados, err := h.service.List(r.Context())
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, estados)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	estado, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, estado)
}

func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	estado, err := h.service.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, estado)
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
	var req EstadoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	estado, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, estado)
}

func (h *Handler) GetOrCreate(w http.ResponseWriter, r *http.Request) {
	var req EstadoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	estado, err := h.service.GetOrCreate(r.Context(), req.Name)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, estado)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req EstadoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	estado, err := h.service.Update(r.Context(), id, req.Name)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, estado)
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
