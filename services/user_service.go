package services

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// UserService handles administrator-only account management. The registration
// and login flows live in AuthService.
type UserService struct {
	users repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List retrieves all regular accounts. Administrator accounts are never
// listed.
func (s *UserService) List() ([]dto.UserResponse, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleRegisterUser {
			continue
		}
		responses = append(responses, userResponse(u))
	}
	return responses, nil
}

// Get retrieves one regular account. Administrator accounts are reported as
// missing.
func (s *UserService) Get(userID string) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleRegisterUser {
		return nil, ErrUserNotFound
	}
	response := userResponse(*user)
	return &response, nil
}

// Create adds an account with an explicit role. Username and email must be
// unique.
func (s *UserService) Create(req dto.CreateUserRequest) (*models.User, error) {
	if existing, err := s.users.GetByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailExists
	}
	if existing, err := s.users.GetByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleRegisterUser
	}
	if role != models.RoleRegisterUser && role != models.RoleAdministrator {
		return nil, invalidInput("Invalid role.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// Update applies a partial-field patch to an account.
func (s *UserService) Update(userID string, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil && *req.Username != "" && *req.Username != user.Username {
		if existing, err := s.users.GetByUsername(*req.Username); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrUsernameTaken
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		if existing, err := s.users.GetByEmail(*req.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrEmailExists
		}
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if req.Role != nil && *req.Role != "" {
		role := models.Role(*req.Role)
		if role != models.RoleRegisterUser && role != models.RoleAdministrator {
			return nil, invalidInput("Invalid role.")
		}
		user.Role = role
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Delete removes one account. Project memberships and task assignments that
// reference the account are left in place and resolve to "Unknown" in
// response graphs.
func (s *UserService) Delete(userID string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(userID)
}

func userResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
