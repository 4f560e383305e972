package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/user"
	"alerto-backend/tests/mocks"
)

func TestUserService_UpdatePhoneNumber(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	existing := &domain.User{ID: userID, Email: "a@example.com"}

	t.Run("Valid", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", ctx, userID).Return(existing, nil).Once()
		userRepo.On("UpdatePhoneNumber", ctx, userID, "+639171234567").Return(nil).Once()

		svc := user.NewService(userRepo, nil)

		updated, err := svc.UpdatePhoneNumber(ctx, userID, domain.UpdatePhoneNumberInput{PhoneNumber: "+639171234567"})

		assert.NoError(t, err)
		assert.Equal(t, "+639171234567", *updated.PhoneNumber)
		userRepo.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", ctx, userID).Return(existing, nil).Once()

		svc := user.NewService(userRepo, nil)

		_, err := svc.UpdatePhoneNumber(ctx, userID, domain.UpdatePhoneNumberInput{PhoneNumber: "not-a-phone"})

		assert.ErrorIs(t, err, user.ErrInvalidPhoneNumber)
		userRepo.AssertNotCalled(t, "UpdatePhoneNumber", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, PasswordHash: string(hash)}, nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password")) == nil
		})).Return(nil).Once()

		svc := user.NewService(userRepo, nil)

		err := svc.UpdatePassword(ctx, userID, domain.UpdatePasswordInput{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, PasswordHash: string(hash)}, nil).Once()

		svc := user.NewService(userRepo, nil)

		err := svc.UpdatePassword(ctx, userID, domain.UpdatePasswordInput{
			CurrentPassword: "guess",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, user.ErrWrongPassword)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "old@example.com"}, nil).Once()
		userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

		svc := user.NewService(userRepo, nil)

		email := "taken@example.com"
		_, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{Email: &email})

		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})
}
