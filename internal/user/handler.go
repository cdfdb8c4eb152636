package user

import (
	"net/http"

	"github.com/gorilla/mux"

	"qualifygym/internal/common"
	"qualifygym/internal/existence"
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
	RoleID   uint64 `json:"role_id" validate:"required,gt=0"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	RoleID   *uint64 `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  uint64 `json:"user_id"`
}

// Handler serves the users and roles REST API.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/roles", h.ListRoles).Methods(http.MethodGet)

	u := r.PathPrefix("/users").Subrouter()
	u.HandleFunc("", h.List).Methods(http.MethodGet)
	u.HandleFunc("", h.Create).Methods(http.MethodPost)
	u.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	u.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	u.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	u.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	u.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
	u.Handle("/{id}/exists", existence.Handler(h.userService.Exists)).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, users)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RoleID:   req.RoleID,
	})
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, user)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	user, err := h.userService.RegisterUser(r.Context(), RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, LoginResponse{
		Message: "login successful",
		Token:   token,
		UserID:  user.ID,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, r, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RoleID:   req.RoleID,
	})
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(r, "id")
	if err != nil {
		common.RespondError(w, r, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		common.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.userService.ListRoles(r.Context())
	if err != nil {
		common.RespondError(w, r, err)
		return
	}
	common.RespondList(w, roles)
}
