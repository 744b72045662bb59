package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hbb/internal/domain/constants"
	"hbb/internal/domain/entity"
	domainerrors "hbb/internal/domain/errors"
	"hbb/internal/domain/repository"
	"hbb/internal/domain/service"
	mockRepo "hbb/internal/mocks/repository"
	mockService "hbb/internal/mocks/service"
	"hbb/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewIdentityService(txManager, publisher, logger)

	return identityServiceFixtures{
		service:   svc,
		txManager: txManager,
		publisher: publisher,
	}
}

func TestIdentityService_CreateOrGetUser_NilPrincipal(t *testing.T) {
	fx := createTestIdentityService(t)

	id, err := fx.service.CreateOrGetUser(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Equal(t, uuid.Nil, id)
}

func TestIdentityService_CreateOrGetUser_ExistingUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|alice", Email: "alice@example.com", Name: "Alice"}
	existing := &entity.User{
		ID:      uuid.New(),
		Subject: principal.Subject,
		Email:   principal.Email,
		Name:    principal.Name,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(existing, nil)

			return fn(mockFactory)
		})

	id, err := fx.service.CreateOrGetUser(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, id)
	fx.publisher.AssertNotCalled(t, "PublishRegistryEvent", mock.Anything, mock.Anything)
}

func TestIdentityService_CreateOrGetUser_CreatesWithDefaults(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|bob"}
	newID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, principal.Subject, user.Subject)
					assert.Equal(t, entity.DefaultUserName, user.Name)
					assert.Empty(t, user.Email)
					user.ID = newID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishRegistryEvent(ctx, mock.AnythingOfType("*service.RegistryEvent")).
		Run(func(ctx context.Context, event *service.RegistryEvent) {
			assert.Equal(t, constants.EventTypeUserCreated, event.Type)
			assert.Equal(t, newID.String(), event.UserID)
		}).
		Return(nil)

	id, err := fx.service.CreateOrGetUser(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestIdentityService_CreateOrGetUser_DuplicateInsertFallsBackToLookup(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|carol", Name: "Carol"}
	winner := &entity.User{ID: uuid.New(), Subject: principal.Subject, Name: "Carol"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(nil, repository.ErrUserNotFound).Once()
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateUser)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(winner, nil).Once()

			return fn(mockFactory)
		})

	id, err := fx.service.CreateOrGetUser(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, id)
	fx.publisher.AssertNotCalled(t, "PublishRegistryEvent", mock.Anything, mock.Anything)
}

func TestIdentityService_GetCurrentUser_NilPrincipal(t *testing.T) {
	fx := createTestIdentityService(t)

	user, err := fx.service.GetCurrentUser(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_GetCurrentUser_NotProvisioned(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|dave"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	user, err := fx.service.GetCurrentUser(ctx, principal)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_GetAuthStatus_NilPrincipal(t *testing.T) {
	fx := createTestIdentityService(t)

	status, err := fx.service.GetAuthStatus(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.Nil(t, status.User)
}

func TestIdentityService_GetAuthStatus_AuthenticatedWithUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|erin", Email: "erin@example.com", Name: "Erin"}
	user := &entity.User{
		ID:      uuid.New(),
		Subject: principal.Subject,
		Email:   principal.Email,
		Name:    principal.Name,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(user, nil)

			return fn(mockFactory)
		})

	status, err := fx.service.GetAuthStatus(ctx, principal)

	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	require.NotNil(t, status.User)
	assert.Equal(t, user.ID, status.User.ID)
	assert.Equal(t, user.Subject, status.User.Subject)
	assert.Equal(t, user.Email, status.User.Email)
	assert.Equal(t, user.Name, status.User.Name)
}

func TestIdentityService_GetAuthStatus_AuthenticatedWithoutUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "idp|frank"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindBySubject(ctx, principal.Subject).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	status, err := fx.service.GetAuthStatus(ctx, principal)

	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	assert.Nil(t, status.User)
}
