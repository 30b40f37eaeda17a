package create_professional

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	profRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
	"github.com/m04kA/Salon-BookingService/internal/integrations/authservice"
)

type fakeProfessionalRepo struct {
	createErr error
	created   *domain.Professional
}

func (f *fakeProfessionalRepo) Create(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	out := *prof
	out.ID = 7
	f.created = &out
	return &out, nil
}

type fakeAuthClient struct {
	uid       uuid.UUID
	createErr error
	deleteErr error

	createdUsers int
	deletedUIDs  []uuid.UUID
}

func (f *fakeAuthClient) CreateUser(_ context.Context, req *authservice.CreateUserRequest) (*authservice.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdUsers++
	return &authservice.User{ID: f.uid, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeAuthClient) DeleteUser(_ context.Context, uid uuid.UUID) error {
	f.deletedUIDs = append(f.deletedUIDs, uid)
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:     "Анна Иванова",
		Email:    "anna@example.com",
		Password: "secret-password",
		Role:     "professional",
	}
}

func TestExecute_CreatesPrincipalThenProfile(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	auth := &fakeAuthClient{uid: uuid.New()}
	uc := NewUseCase(repo, auth, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, auth.uid, resp.AuthUID)
	assert.Equal(t, "professional", resp.Role)
	assert.True(t, resp.Active)

	assert.Equal(t, 1, auth.createdUsers)
	assert.Empty(t, auth.deletedUIDs, "no compensation on success")
	require.NotNil(t, repo.created)
	assert.Equal(t, auth.uid, repo.created.AuthUID)
}

func TestExecute_CompensatesWhenProfileInsertFails(t *testing.T) {
	repo := &fakeProfessionalRepo{createErr: assert.AnError}
	auth := &fakeAuthClient{uid: uuid.New()}
	uc := NewUseCase(repo, auth, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	// Принципал создан и удалён компенсацией
	assert.Equal(t, []uuid.UUID{auth.uid}, auth.deletedUIDs)
}

func TestExecute_CompensationFailureStillReturnsOriginalError(t *testing.T) {
	repo := &fakeProfessionalRepo{createErr: assert.AnError}
	auth := &fakeAuthClient{uid: uuid.New(), deleteErr: assert.AnError}
	uc := NewUseCase(repo, auth, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.Len(t, auth.deletedUIDs, 1)
}

func TestExecute_EmailTakenInAuthService(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	auth := &fakeAuthClient{createErr: authservice.ErrEmailTaken}
	uc := NewUseCase(repo, auth, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_EmailTakenInProfileStore(t *testing.T) {
	repo := &fakeProfessionalRepo{createErr: profRepo.ErrEmailTaken}
	auth := &fakeAuthClient{uid: uuid.New()}
	uc := NewUseCase(repo, auth, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrEmailTaken)
	// Компенсация выполняется и при гонке по email в профилях
	assert.Len(t, auth.deletedUIDs, 1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeProfessionalRepo{}, &fakeAuthClient{}, nopLogger{})

	cases := map[string]*Request{
		"nil request": nil,
		"empty name": {
			Name: "  ", Email: "anna@example.com", Password: "secret-password", Role: "professional",
		},
		"bad email": {
			Name: "Анна", Email: "not-an-email", Password: "secret-password", Role: "professional",
		},
		"short password": {
			Name: "Анна", Email: "anna@example.com", Password: "short", Role: "professional",
		},
		"unknown role": {
			Name: "Анна", Email: "anna@example.com", Password: "secret-password", Role: "client",
		},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
