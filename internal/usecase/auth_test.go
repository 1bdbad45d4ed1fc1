package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/usecase"
)

var testSecret = []byte("test-secret")

func newAuthUseCase(users *MockUserRepository) *usecase.AuthUseCase {
	uc := usecase.NewAuthUseCase(users, testSecret)
	uc.Now = func() time.Time { return fixedNow }
	return uc
}

func TestRegisterCreatesTelecallerWithToken(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleTelecaller &&
			u.Email == "priya@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")) == nil
	})).Return(nil)

	uc := newAuthUseCase(users)

	out, err := uc.Register(ctx, usecase.RegisterInput{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret!",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleTelecaller, out.Role)
	assert.NotEmpty(t, out.Token)

	claims := &usecase.TokenClaims{}
	_, perr := jwt.ParseWithClaims(out.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	assert.NoError(t, perr)
	assert.Equal(t, out.ID, claims.Subject)
	assert.Equal(t, entity.RoleTelecaller, claims.Role)
}

func TestRegisterShortPasswordFailsValidation(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	uc := newAuthUseCase(users)

	out, err := uc.Register(ctx, usecase.RegisterInput{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "abc",
	})

	assert.Nil(t, out)
	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
	users.AssertNotCalled(t, "Create")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	users.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := newAuthUseCase(users)

	out, err := uc.Register(ctx, usecase.RegisterInput{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret!",
	})

	assert.Nil(t, out)
	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)

	users := new(MockUserRepository)
	users.On("FindByEmail", ctx, "priya@example.com").Return(&entity.User{
		ID:           "tc-1",
		Email:        "priya@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleTelecaller,
	}, nil)

	uc := newAuthUseCase(users)

	out, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "priya@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, out)
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, entity.ErrUserNotFound)

	uc := newAuthUseCase(users)

	out, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, out)
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)

	users := new(MockUserRepository)
	users.On("FindByEmail", ctx, "priya@example.com").Return(&entity.User{
		ID:           "tc-1",
		Name:         "Priya",
		Email:        "priya@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleTelecaller,
	}, nil)

	uc := newAuthUseCase(users)

	out, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "priya@example.com",
		Password: "right-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tc-1", out.ID)
	assert.NotEmpty(t, out.Token)
}

func TestListTelecallersAdminOnly(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	users.On("FindByRole", ctx, entity.RoleTelecaller).Return([]entity.User{{ID: "tc-1"}}, nil)

	uc := newAuthUseCase(users)

	_, err := uc.ListTelecallers(ctx, entity.Actor{ID: "tc-1", Role: entity.RoleTelecaller})
	assert.Equal(t, usecase.CodeForbidden, usecase.ErrorCode(err))

	list, err := uc.ListTelecallers(ctx, entity.Actor{ID: "admin-1", Role: entity.RoleAdmin})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	ctx := context.Background()
	actor := entity.Actor{ID: "tc-1", Role: entity.RoleTelecaller}

	users := new(MockUserRepository)
	users.On("FindByID", ctx, "tc-1").Return(&entity.User{
		ID:           "tc-1",
		Name:         "Priya",
		Email:        "priya@example.com",
		PasswordHash: "old-hash",
		Role:         entity.RoleTelecaller,
	}, nil)
	users.On("Save", ctx, mock.Anything).Return(nil)

	uc := newAuthUseCase(users)

	user, err := uc.UpdateProfile(ctx, actor, usecase.UpdateProfileInput{
		Name:     "Priya S",
		Password: "new-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Priya S", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password")))
	assert.Equal(t, fixedNow, user.UpdatedAt)
}
