package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"account-service/internal/auth"
	"account-service/internal/domain"
	"account-service/internal/repository"
)

var (
	// ErrMissingUsername indicates the username field was absent or empty.
	ErrMissingUsername = errors.New("username is required")
	// ErrMissingPassword indicates the password field was absent or empty.
	ErrMissingPassword = errors.New("password is required")
	// ErrDuplicateUsername is returned when registering an already-taken username.
	ErrDuplicateUsername = errors.New("username is already in use")
	// ErrInvalidCredentials covers unknown usernames, wrong passwords and
	// inactive users uniformly, so a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Active   bool
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string
	User  domain.UserView
}

// ProfileUpdate carries the optional fields of a profile update. A nil field
// keeps the stored value.
type ProfileUpdate struct {
	Name      *string
	Biography *string
	Github    *string
	Linkedin  *string
}

// AccountService orchestrates registration, login and profile access.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetProfile(ctx context.Context, userID int64) (*domain.FullProfile, error)
	UpdateProfile(ctx context.Context, userID int64, in ProfileUpdate) (*domain.FullProfile, error)
}

type accountService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   *auth.TokenService
}

func NewAccountService(users repository.UserRepository, profiles repository.ProfileRepository, tokens *auth.TokenService) AccountService {
	return &accountService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
	}
}

func (s *accountService) Register(ctx context.Context, in RegisterInput) error {
	if in.Username == "" {
		return ErrMissingUsername
	}
	if in.Password == "" {
		return ErrMissingPassword
	}

	if _, err := s.users.GetByUsername(ctx, in.Username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Active:       in.Active,
	}

	// user and empty profile land in one transaction
	if _, err := s.users.CreateWithProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	// inactive users are indistinguishable from unknown ones
	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.View()}, nil
}

func (s *accountService) GetProfile(ctx context.Context, userID int64) (*domain.FullProfile, error) {
	user, profile, err := s.loadAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := domain.FullInfo(user, profile)
	return &info, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int64, in ProfileUpdate) (*domain.FullProfile, error) {
	user, profile, err := s.loadAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Biography != nil {
		profile.Biography = *in.Biography
	}
	if in.Github != nil {
		profile.Github = *in.Github
	}
	if in.Linkedin != nil {
		profile.Linkedin = *in.Linkedin
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	info := domain.FullInfo(user, profile)
	return &info, nil
}

// loadAccount fetches the user and their profile, creating an empty profile
// on first access when none exists yet.
func (s *accountService) loadAccount(ctx context.Context, userID int64) (*domain.User, *domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// the token was just verified, so a missing user is an
		// inconsistency fault rather than a client error
		return nil, nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile, err = s.profiles.CreateForUser(ctx, userID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load profile for user %d: %w", userID, err)
	}
	return user, profile, nil
}
