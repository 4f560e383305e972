package user

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// phonePattern accepts E.164 numbers, with or without the plus.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	UpdatePhoneNumber(ctx context.Context, id uuid.UUID, input domain.UpdatePhoneNumberInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, input domain.UpdatePasswordInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) UpdatePhoneNumber(ctx context.Context, id uuid.UUID, input domain.UpdatePhoneNumberInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !phonePattern.MatchString(input.PhoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}

	if err := s.userRepo.UpdatePhoneNumber(ctx, id, input.PhoneNumber); err != nil {
		return nil, err
	}

	user.PhoneNumber = &input.PhoneNumber
	return user, nil
}

func (s *service) UpdatePassword(ctx context.Context, id uuid.UUID, input domain.UpdatePasswordInput) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.Update(ctx, user)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.sessionRepo.RevokeAllForUser(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}
