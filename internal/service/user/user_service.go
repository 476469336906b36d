package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/password"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/uniqueness"
	"github.com/Domenick1991/hotelbooking/internal/validation"
)

const registeredMessage = "User registered successfully"

type UserUseCase interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	RegisterUser(ctx context.Context, input domain.NewUser) (*Registration, error)
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UsersByRole(ctx context.Context, role string) ([]domain.User, error)
	Authenticate(ctx context.Context, email, plain string) (*Profile, error)
}

// Registration is the acknowledgement returned for a new account.
type Registration struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
}

// Profile is what a successful credential check reveals about the account.
type Profile struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      domain.UserRole `json:"role"`
}

type UserService struct {
	users              repository.UserRepository
	hasher             password.Hasher
	producer           kafka.Publisher
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
	logger             *slog.Logger
}

type UserServiceOption func(*UserService)

func WithEvents(producer kafka.Publisher, eventsTopic, notificationsTopic string) UserServiceOption {
	return func(s *UserService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithClock(now func() time.Time) UserServiceOption {
	return func(s *UserService) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) UserServiceOption {
	return func(s *UserService) {
		s.logger = logger
	}
}

func NewUserService(users repository.UserRepository, hasher password.Hasher, opts ...UserServiceOption) *UserService {
	service := &UserService{
		users:  users,
		hasher: hasher,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) RegisterUser(ctx context.Context, input domain.NewUser) (*Registration, error) {
	logger := s.log(ctx, "register", "email", input.Email)

	if err := validation.ValidateUser(input); err != nil {
		logger.Warn("registration rejected", "error", err)
		return nil, err
	}
	if err := uniqueness.EnsureUniqueEmail(ctx, s.users, input.Email, nil); err != nil {
		logger.Warn("email check failed", "error", err)
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	user := domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: digest,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		Role:         input.Role,
	}
	if err := s.users.Save(ctx, &user); err != nil {
		logger.Error("failed to save user", "error", err)
		return nil, err
	}

	event := kafka.NewEvent(kafka.EventUserRegistered, s.now())
	event.UserID = user.ID
	event.Email = user.Email
	if err := kafka.Emit(ctx, s.producer, s.eventsTopic, s.notificationsTopic, event); err != nil {
		logger.Warn("failed to publish user_registered event", "user_id", user.ID, "error", err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return &Registration{Message: registeredMessage, UserID: user.ID, Email: user.Email}, nil
}

// UpdateUser applies the present fields of patch. An empty password leaves
// the stored digest untouched.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	logger := s.log(ctx, "update", "user_id", id)

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateUserPatch(patch); err != nil {
		logger.Warn("update rejected", "error", err)
		return nil, err
	}
	if patch.Email != nil {
		if err := uniqueness.EnsureUniqueEmail(ctx, s.users, *patch.Email, &user.Email); err != nil {
			logger.Warn("email check failed", "error", err)
			return nil, err
		}
		user.Email = *patch.Email
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		user.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Password != nil && *patch.Password != "" {
		digest, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			logger.Error("failed to hash password", "error", err)
			return nil, err
		}
		user.PasswordHash = digest
	}

	if err := s.users.Save(ctx, user); err != nil {
		logger.Error("failed to save user", "error", err)
		return nil, err
	}

	logger.Info("user updated")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log(ctx, "delete", "user_id", id).Info("user deleted")
	return nil
}

func (s *UserService) UsersByRole(ctx context.Context, role string) ([]domain.User, error) {
	r, ok := domain.ParseUserRole(role)
	if !ok {
		return nil, domain.ErrInvalidUserRole
	}
	return s.users.FindByRole(ctx, r)
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, plain string) (*Profile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(plain, user.PasswordHash) {
		s.log(ctx, "authenticate", "user_id", user.ID).Info("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return &Profile{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}

func (s *UserService) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return logging.ServiceLogger(ctx, s.logger, "user", operation, attrs...)
}

var _ UserUseCase = (*UserService)(nil)
