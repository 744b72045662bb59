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

type businessService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewBusinessService creates the business usecase implementation.
func NewBusinessService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) CreateBusiness(ctx context.Context, principal *service.Principal, input *usecase.CreateBusinessInput) (uuid.UUID, error) {
	if principal == nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}
	if !entity.Category(input.Category).IsValid() {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category)
	}

	var (
		businessID uuid.UUID
		userID     uuid.UUID
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user, err := factory.UserRepo().FindBySubject(ctx, principal.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "find user by subject")
		}
		userID = user.ID

		businessRepo := factory.BusinessRepo()

		if _, err := businessRepo.FindByOwner(ctx, user.ID); err == nil {
			return domainerrors.ErrDuplicateBusiness
		} else if !errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(err, "find business by owner")
		}

		business := newBusinessFromInput(user.ID, input)
		if err := businessRepo.Create(ctx, business); err != nil {
			if errors.Is(err, repository.ErrDuplicateBusiness) {
				// Lost the race against a concurrent registration, the
				// unique index on owner is the final arbiter.
				return domainerrors.ErrDuplicateBusiness
			}

			return errors.Wrap(err, "create business")
		}
		businessID = business.ID

		return nil
	})
	if err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return uuid.Nil, err
		}
		srv.log(ctx).ErrorContext(ctx, "create business failed", slog.Any("error", err))

		return uuid.Nil, domainerrors.ErrBusinessCreationFailed.WithDetails(err.Error())
	}

	srv.publishEvent(ctx, constants.EventTypeBusinessCreated, userID, businessID)

	return businessID, nil
}

func (srv *businessService) GetMyBusiness(ctx context.Context, principal *service.Principal) (*entity.Business, error) {
	if principal == nil {
		return nil, nil
	}

	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user, err := factory.UserRepo().FindBySubject(ctx, principal.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "find user by subject")
		}

		found, err := factory.BusinessRepo().FindByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return nil
			}

			return errors.Wrap(err, "find business by owner")
		}
		business = found

		return nil
	})
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "get my business failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return business, nil
}

func (srv *businessService) CanCreateBusiness(ctx context.Context, principal *service.Principal) (*usecase.CanCreateOutput, error) {
	if principal == nil {
		return denied(usecase.ReasonNotAuthenticated), nil
	}

	var output *usecase.CanCreateOutput

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user, err := factory.UserRepo().FindBySubject(ctx, principal.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				output = denied(usecase.ReasonUserNotFound)

				return nil
			}

			return errors.Wrap(err, "find user by subject")
		}

		if _, err := factory.BusinessRepo().FindByOwner(ctx, user.ID); err == nil {
			output = denied(usecase.ReasonAlreadyHasBusiness)

			return nil
		} else if !errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(err, "find business by owner")
		}

		output = &usecase.CanCreateOutput{CanCreate: true, Reason: nil}

		return nil
	})
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "can create business failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return output, nil
}

func (srv *businessService) publishEvent(ctx context.Context, eventType string, userID, businessID uuid.UUID) {
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

func denied(reason string) *usecase.CanCreateOutput {
	return &usecase.CanCreateOutput{CanCreate: false, Reason: &reason}
}

func newBusinessFromInput(ownerID uuid.UUID, input *usecase.CreateBusinessInput) *entity.Business {
	return &entity.Business{
		OwnerID:          ownerID,
		Name:             input.Name,
		Category:         entity.Category(input.Category),
		Description:      input.Description,
		ShortDescription: entity.ShortDescriptionOf(input.Description),
		Address:          input.Address,
		Status:           entity.StatusDraft,
	}
}
