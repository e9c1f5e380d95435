package impl

import (
	"context"
	"testing"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	mockRepo "minbar/internal/mocks/repository"
	mockSvc "minbar/internal/mocks/service"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewAuthService(userRepo, hasher, tokenSvc), userRepo, hasher, tokenSvc
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleAdmin,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Check("s3cret", user.PasswordHash).Return(true)
	tokenSvc.EXPECT().GenerateTokens(user.ID, entity.RoleAdmin).Return("access", "refresh", nil)

	result, err := svc.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, user, result.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hash"}

	userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hash").Return(false)

	// Same error as unknown email so the endpoint leaks nothing.
	_, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hash", Role: entity.RoleUser}

	userRepo.EXPECT().FindUserByEmail(ctx, mock.Anything).Return(user, nil)
	hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	tokenSvc.EXPECT().GenerateTokens(user.ID, entity.RoleUser).
		Return("", "", errors.New("signing key unavailable"))

	_, err := svc.Login(ctx, "admin@example.com", "s3cret")
	assert.ErrorContains(t, err, "failed to issue tokens")
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser
	})).Return(nil)

	user, err := svc.Register(ctx, "new@example.com", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _, _, _ := createTestAuthService(t)

	ctx := context.Background()

	_, err := svc.Register(ctx, "", "s3cret", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = svc.Register(ctx, "new@example.com", "", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = svc.Register(ctx, "new@example.com", "s3cret", "superuser")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

	_, err := svc.Register(ctx, "taken@example.com", "s3cret", entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}
