package notif

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
)

type NotificationHandler struct {
	service *NotificationService
}

func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// RegisterRoutes mounts the notification sub-resource on an /api/v1 router.
func (h *NotificationHandler) RegisterRoutes(r *mux.Router) {
	n := r.PathPrefix("/notifications").Subrouter()
	n.HandleFunc("/user/{id}", h.ListForUser).Methods(http.MethodGet)
	n.HandleFunc("/user/{id}/unread", h.ListUnread).Methods(http.MethodGet)
	n.HandleFunc("/user/{id}/unread/count", h.CountUnread).Methods(http.MethodGet)
	n.HandleFunc("/user/{id}/mark-all-read", h.MarkAllRead).Methods(http.MethodPut)
	n.HandleFunc("/{id}/mark-read", h.MarkRead).Methods(http.MethodPut)
	n.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *NotificationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	notifications, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, notifications)
}

func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	notifications, err := h.service.ListUnreadForUser(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, notifications)
}

func (h *NotificationHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	count, err := h.service.CountUnread(r.Context(), userID)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondCount(w, count)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	notification, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	if _, err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		common.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
