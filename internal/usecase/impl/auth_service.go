// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/infra/metrics"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	recorder     metrics.Recorder
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Recorder     metrics.Recorder
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The uniqueness
// checks and the insert run inside one transaction; the check order (name,
// email, password match, role) is fixed so error messages are deterministic.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("name", input.Name), slog.String("email", input.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		nameExists, err := userRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return errors.Wrap(err, "failed to check name uniqueness")
		}
		if nameExists {
			return errors.Wrap(domainerrors.ErrNameTaken, "registration rejected")
		}

		emailExists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if emailExists {
			return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
		}

		if input.Password != input.ConfirmPassword {
			return errors.Wrap(domainerrors.ErrPasswordMismatch, "registration rejected")
		}

		// Exactly one role is registrable; anything else is rejected rather
		// than silently defaulted.
		if input.Role != entity.RoleUser {
			return errors.Wrap(domainerrors.ErrUnsupportedRole, "registration rejected")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			ID:           entity.NewUserID(),
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         input.Role,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.recorder.RecordRegistration(false)
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.recorder.RecordRegistration(true)
	srv.log(ctx).Info("User registered successfully", slog.String("name", input.Name))

	return &usecase.RegisterOutput{
		CorrelationID: uuid.New().String(),
		Timestamp:     time.Now(),
		Name:          input.Name,
	}, nil
}

// SignIn verifies credentials against the stored identity and issues a
// session token. "No such user" and "wrong password" are deliberately
// indistinguishable to the caller.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.recorder.RecordSignIn(false)
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed: unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrBadCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	// bcrypt comparison; CPU-bound, kept outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recorder.RecordSignIn(false)
		srv.log(ctx).Warn("Sign-in failed: wrong password", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrBadCredentials, "sign-in failed")
	}

	token, err := srv.tokenService.Issue(user.Email, user.Role)
	if err != nil {
		srv.recorder.RecordSignIn(false)

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.recorder.RecordSignIn(true)
	srv.log(ctx).Info("User signed in successfully", slog.String("userID", user.ID))

	return &usecase.SignInOutput{
		UserID:    user.ID,
		Token:     token,
		TokenType: "Bearer",
		Name:      user.Name,
		Roles:     []entity.Role{user.Role},
		ExpiresAt: srv.tokenService.ExpiresAt(time.Now()),
	}, nil
}
