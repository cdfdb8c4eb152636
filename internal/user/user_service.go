package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type UserService interface {
	Seed(ctx context.Context) error
	RegisterUser(ctx context.Context, in RegisterInput) (*dbmysql.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*dbmysql.User, error)
	LoginUser(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	GetUser(ctx context.Context, userID uint64) (*dbmysql.User, error)
	ListUsers(ctx context.Context) ([]*dbmysql.User, error)
	UpdateUser(ctx context.Context, userID uint64, in UpdateUserInput) (*dbmysql.User, error)
	DeleteUser(ctx context.Context, userID uint64) error
	ListRoles(ctx context.Context) ([]*dbmysql.Role, error)
	Exists(ctx context.Context, userID uint64) (bool, error)
}

type RegisterInput struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type CreateUserInput struct {
	Username string
	Password string
	Email    string
	RoleID   uint64
}

// UpdateUserInput carries a partial update; nil fields are left alone.
type UpdateUserInput struct {
	Username *string
	Password *string
	Email    *string
	RoleID   *uint64
}

type seedUser struct {
	username, password, email string
	roleID                    uint64
}

var defaultRoles = []*dbmysql.Role{
	{ID: dbmysql.RoleAdministrator, Name: "Administrador"},
	{ID: dbmysql.RoleUser, Name: "Usuario"},
}

var defaultUsers = []seedUser{
	{"admin", "admin123", "admin@qualifygym.com", dbmysql.RoleAdministrator},
	{"usuario1", "usuario123", "usuario1@qualifygym.com", dbmysql.RoleUser},
}

type userService struct {
	userRepo UserRepository
	roleRepo RoleRepository
	tokens   *common.TokenIssuer
}

func NewUserService(userRepo UserRepository, roleRepo RoleRepository, tokens *common.TokenIssuer) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo, tokens: tokens}
}

// Seed inserts the default roles and users into empty tables.
func (s *userService) Seed(ctx context.Context) error {
	roles, err := s.roleRepo.CountRoles(ctx)
	if err != nil {
		return err
	}
	if roles == 0 {
		for _, role := range defaultRoles {
			r := *role
			if err := s.roleRepo.CreateRole(ctx, &r); err != nil {
				return err
			}
		}
		slog.InfoContext(ctx, "seeded roles", "count", len(defaultRoles))
	}

	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return err
	}
	if users > 0 {
		return nil
	}
	for _, u := range defaultUsers {
		hashed, err := common.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := &dbmysql.User{Username: u.username, Email: u.email, PasswordHash: hashed, RoleID: u.roleID}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "seeded users", "count", len(defaultUsers))
	return nil
}

func (s *userService) RegisterUser(ctx context.Context, in RegisterInput) (*dbmysql.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, common.NewValidationError("username is required")
	}
	if err := s.checkUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	if err := common.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	phone, err := common.NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	if err := common.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if common.IsBlank(in.ConfirmPassword) {
		return nil, common.NewValidationError("confirm_password is required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, common.NewValidationError("passwords do not match")
	}

	if _, err := s.roleRepo.GetRoleByID(ctx, dbmysql.RoleUser); err != nil {
		if common.IsNotFound(err) {
			return nil, common.NewInternalError(fmt.Errorf("default role %d is missing", dbmysql.RoleUser))
		}
		return nil, common.NewInternalError(err)
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, common.NewInternalError(err)
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashed,
		RoleID:       dbmysql.RoleUser,
	}
	if err := s.create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*dbmysql.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" || in.RoleID == 0 {
		return nil, common.NewValidationError("username, password, email and role_id are required")
	}

	if err := s.checkUsernameFree(ctx, username); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, in.RoleID); err != nil {
		return nil, err
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, common.NewInternalError(err)
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		RoleID:       in.RoleID,
	}
	if err := s.create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) LoginUser(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if common.IsBlank(email) || password == "" {
		return nil, "", common.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if common.IsNotFound(err) {
			return nil, "", common.NewUnauthorizedError("invalid credentials")
		}
		return nil, "", common.NewInternalError(err)
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.RoleID)
	if err != nil {
		return nil, "", common.NewInternalError(err)
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]*dbmysql.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID uint64, in UpdateUserInput) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username != "" && username != user.Username {
			if err := s.checkUsernameFree(ctx, username); err != nil {
				return nil, err
			}
			user.Username = username
		}
	}

	if in.Password != nil && *in.Password != "" {
		hashed, err := common.HashPassword(*in.Password)
		if err != nil {
			return nil, common.NewInternalError(err)
		}
		user.PasswordHash = hashed
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" && email != user.Email {
			if err := common.ValidateEmail(email); err != nil {
				return nil, err
			}
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}

	if in.RoleID != nil {
		if err := s.checkRole(ctx, *in.RoleID); err != nil {
			return nil, err
		}
		user.RoleID = *in.RoleID
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return nil, common.NewConflictError("username or email already in use")
		}
		return nil, common.NewInternalError(err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uint64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *userService) ListRoles(ctx context.Context) ([]*dbmysql.Role, error) {
	return s.roleRepo.ListRoles(ctx)
}

func (s *userService) Exists(ctx context.Context, userID uint64) (bool, error) {
	return s.userRepo.Exists(ctx, userID)
}

func (s *userService) create(ctx context.Context, user *dbmysql.User) error {
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return common.NewConflictError("username or email already in use")
		}
		return common.NewInternalError(err)
	}
	return nil
}

func (s *userService) checkUsernameFree(ctx context.Context, username string) error {
	taken, err := s.userRepo.CheckUsernameExists(ctx, username)
	if err != nil {
		return common.NewInternalError(err)
	}
	if taken {
		return common.NewConflictError(fmt.Sprintf("username %q already exists", username))
	}
	return nil
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
	taken, err := s.userRepo.CheckEmailExists(ctx, email)
	if err != nil {
		return common.NewInternalError(err)
	}
	if taken {
		return common.NewConflictError(fmt.Sprintf("email %q is already registered", email))
	}
	return nil
}

func (s *userService) checkRole(ctx context.Context, roleID uint64) error {
	if _, err := s.roleRepo.GetRoleByID(ctx, roleID); err != nil {
		if common.IsNotFound(err) {
			return common.NewReferentialIntegrityError(fmt.Sprintf("role %d does not exist", roleID))
		}
		return common.NewInternalError(err)
	}
	return nil
}
