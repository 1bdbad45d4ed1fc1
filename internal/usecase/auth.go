package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/telecrm/internal/entity"
)

const tokenTTL = 24 * time.Hour

// TokenClaims is the JWT payload carried on every authenticated
// request. The core never reads it directly; the HTTP layer converts
// it into an entity.Actor.
type TokenClaims struct {
	Name string      `json:"name"`
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase is glue, not core: it exists to reproduce the user
// routes of the API surface. Registration always creates a
// telecaller; the admin account is seeded at startup and roles are
// immutable afterwards.
type AuthUseCase struct {
	Users  UserRepositoryInterface
	Secret []byte
	Now    func() time.Time
}

func NewAuthUseCase(users UserRepositoryInterface, secret []byte) *AuthUseCase {
	return &AuthUseCase{
		Users:  users,
		Secret: secret,
		Now:    time.Now,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(input.Name, input.Email, string(hash), entity.RoleTelecaller)
	if err != nil {
		return nil, Invalid(err.Error())
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, Invalid("email already registered")
		}
		return nil, err
	}

	return uc.authOutput(user)
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, Invalid("invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, Invalid("invalid email or password")
	}

	return uc.authOutput(user)
}

func (uc *AuthUseCase) Profile(ctx context.Context, actor entity.Actor) (*entity.User, error) {
	user, err := uc.Users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, actor entity.Actor, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.Profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = uc.Now()

	if err := uc.Users.Save(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, Invalid("email already registered")
		}
		return nil, err
	}

	return user, nil
}

// ListTelecallers backs the admin dashboard's telecaller table.
func (uc *AuthUseCase) ListTelecallers(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("not authorized to list users")
	}
	return uc.Users.FindByRole(ctx, entity.RoleTelecaller)
}

func (uc *AuthUseCase) GetUser(ctx context.Context, id string, actor entity.Actor) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("not authorized to view users")
	}
	user, err := uc.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) DeleteUser(ctx context.Context, id string, actor entity.Actor) error {
	if !actor.IsAdmin() {
		return Forbidden("not authorized to delete users")
	}
	if _, err := uc.Users.FindByID(ctx, id); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return NotFound("user not found")
		}
		return err
	}
	return uc.Users.Delete(ctx, id)
}

func (uc *AuthUseCase) authOutput(user *entity.User) (*AuthOutput, error) {
	token, err := uc.signToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) signToken(user *entity.User) (string, error) {
	now := uc.Now()
	claims := TokenClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.Secret)
}
