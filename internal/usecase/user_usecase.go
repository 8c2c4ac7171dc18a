package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/finbook/finbook/internal/domain"
)

// UserUseCase handles user management operations for the admin subsystem.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	now      func() time.Time
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

// CreateUserInput represents input for creating a user.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// CreateUser creates a new user with a hashed password and zero balance.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domain.ErrInsufficientRole
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: hashed,
		Role:           input.Role,
		Balance:        decimal.Zero,
		Active:         true,
		CreatedAt:      uc.now().UTC(),
		UpdatedAt:      uc.now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// AuthenticateInput represents authentication input.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies user credentials and returns the user on success.
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if err := verifyPassword(user.HashedPassword, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// ListUsers lists users for the admin view.
func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	users, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.HashedPassword = ""
	}

	return users, nil
}

// UpdateUserInput carries the editable profile fields. Nil pointers leave
// the current value untouched; there is no partial-map state spreading.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	Active *bool
}

// UpdateUser applies a field-by-field update to a user record.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	user.UpdatedAt = uc.now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// CreditBalance adds a positive amount to a user's platform balance.
// Negative or zero credits are rejected.
func (uc *UserUseCase) CreditBalance(ctx context.Context, id string, amount decimal.Decimal) (*domain.User, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidCredit
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Balance = user.Balance.Add(amount)
	user.UpdatedAt = uc.now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func verifyPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
