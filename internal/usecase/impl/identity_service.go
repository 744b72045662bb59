// Package impl provides the concrete usecase implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	deliverycontext "hbb/internal/delivery/context"
	"hbb/internal/domain/constants"
	"hbb/internal/domain/entity"
	domainerrors "hbb/internal/domain/errors"
	"hbb/internal/domain/repository"
	"hbb/internal/domain/service"
	"hbb/internal/errors"
	"hbb/internal/usecase"
)

type identityService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewIdentityService creates the identity usecase implementation.
func NewIdentityService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns the request-scoped logger from context, falling back to the
// service logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *identityService) CreateOrGetUser(ctx context.Context, principal *service.Principal) (uuid.UUID, error) {
	if principal == nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	var (
		userID  uuid.UUID
		created bool
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		existing, err := userRepo.FindBySubject(ctx, principal.Subject)
		if err == nil {
			userID = existing.ID

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "find user by subject")
		}

		user := newUserFromPrincipal(principal)
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				// Another request provisioned the same subject first.
				existing, err := userRepo.FindBySubject(ctx, principal.Subject)
				if err != nil {
					return errors.Wrap(err, "find user after duplicate insert")
				}
				userID = existing.ID

				return nil
			}

			return errors.Wrap(err, "create user")
		}

		userID = user.ID
		created = true

		return nil
	})
	if err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return uuid.Nil, err
		}
		srv.log(ctx).ErrorContext(ctx, "create or get user failed", slog.Any("error", err))

		return uuid.Nil, domainerrors.ErrUserCreationFailed.WithDetails(err.Error())
	}

	if created {
		srv.publishEvent(ctx, constants.EventTypeUserCreated, userID, uuid.Nil)
	}

	return userID, nil
}

func (srv *identityService) GetCurrentUser(ctx context.Context, principal *service.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, nil
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.UserRepo().FindBySubject(ctx, principal.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "find user by subject")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "get current user failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return user, nil
}

func (srv *identityService) GetAuthStatus(ctx context.Context, principal *service.Principal) (*usecase.AuthStatusOutput, error) {
	if principal == nil {
		return &usecase.AuthStatusOutput{Authenticated: false, User: nil}, nil
	}

	user, err := srv.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthStatusOutput{
		Authenticated: true,
		User:          usecase.NewUserProfile(user),
	}, nil
}

// publishEvent emits a registry event after commit. Failures only log, the
// write already succeeded.
func (srv *identityService) publishEvent(ctx context.Context, eventType string, userID, businessID uuid.UUID) {
	event := &service.RegistryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID.String(),
		OccurredAt: time.Now(),
	}
	if businessID != uuid.Nil {
		event.BusinessID = businessID.String()
	}

	if err := srv.publisher.PublishRegistryEvent(ctx, event); err != nil {
		srv.log(ctx).WarnContext(ctx, "publish registry event failed",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

func newUserFromPrincipal(principal *service.Principal) *entity.User {
	name := principal.Name
	if name == "" {
		name = entity.DefaultUserName
	}

	return &entity.User{
		Subject: principal.Subject,
		Email:   principal.Email,
		Name:    name,
	}
}
