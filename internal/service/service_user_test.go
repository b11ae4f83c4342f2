package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/my-gram/internal/crypto"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/mock"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userSvcMocks struct {
	users  *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	tokens *mock.MockTokenManager
}

func newTestUserSvc(t *testing.T) (UserService, userSvcMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := userSvcMocks{
		users:  mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		tokens: mock.NewMockTokenManager(ctrl),
	}
	svc := NewUserService(m.users, m.hasher, m.tokens, validators.NewPayloadValidator(), logger.Nop())

	return svc, m
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:           "alice@mail.com",
		FullName:        "Alice Liddell",
		Username:        "alice",
		Password:        "secret",
		ProfileImageURL: "https://img.example/alice.png",
		Age:             20,
		PhoneNumber:     "+7000",
	}
}

func strPtr(s string) *string { return &s }

// ── Register ──────────────────────────────────────────────────────────────────

func TestUserService_Register_Success(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound),
		m.hasher.EXPECT().Hash(req.Password).Return("bcrypt-hash", nil),
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "bcrypt-hash", u.PasswordHash)
				assert.Equal(t, req.Username, u.Username)
				u.ID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Register_EmailUsed(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{ID: 9}, nil)

	_, err := svc.Register(ctx, req)

	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, KindConflict, serviceErr.Kind)
	assert.Equal(t, MsgEmailUsed, serviceErr.Message)
}

func TestUserService_Register_EmailTakenByConcurrentInsert(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)
	m.hasher.EXPECT().Hash(req.Password).Return("bcrypt-hash", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyUsed)

	_, err := svc.Register(ctx, req)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUserService_Register_EmailUsedWinsOverInvalidPayload(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()
	req.Age = 0
	req.Password = ""

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{ID: 9}, nil)

	_, err := svc.Register(ctx, req)

	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, KindConflict, serviceErr.Kind)
	assert.Equal(t, MsgEmailUsed, serviceErr.Message)
	assert.Empty(t, serviceErr.Fields)
}

func TestUserService_Register_SchemaRejectsValue(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)
	m.hasher.EXPECT().Hash(req.Password).Return("bcrypt-hash", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, fmt.Errorf("%w: value too long", store.ErrConstraintViolation))

	_, err := svc.Register(ctx, req)

	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, KindInvalidInput, serviceErr.Kind)
	assert.Equal(t, MsgInvalidValue, serviceErr.Message)
}

func TestUserService_Register_InvalidPayload(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()
	req.Email = "not-an-email"
	req.ProfileImageURL = ""

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Register(ctx, req)

	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, KindInvalidInput, serviceErr.Kind)
	require.Len(t, serviceErr.Fields, 2)
	assert.Equal(t, "email", serviceErr.Fields[0].Path)
	assert.Equal(t, "profile_image_url", serviceErr.Fields[1].Path)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	req := models.LoginRequest{Email: "alice@mail.com", Password: "secret"}
	stored := models.User{ID: 3, Email: req.Email, PasswordHash: "bcrypt-hash"}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(stored, nil)
		m.hasher.EXPECT().Compare("bcrypt-hash", "secret").Return(nil)
		m.tokens.EXPECT().Sign(int64(3)).Return(tokenFor(3), nil)

		token, err := svc.Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), token.UserID())
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(ctx, req)

		var serviceErr *Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, KindNotFound, serviceErr.Kind)
		assert.Equal(t, MsgUserNotFound, serviceErr.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(stored, nil)
		m.hasher.EXPECT().Compare("bcrypt-hash", "secret").Return(crypto.ErrPasswordMismatch)

		_, err := svc.Login(ctx, req)

		var serviceErr *Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, KindInvalidInput, serviceErr.Kind)
		assert.Equal(t, MsgWrongPassword, serviceErr.Message)
	})

	t.Run("signing fails", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(stored, nil)
		m.hasher.EXPECT().Compare("bcrypt-hash", "secret").Return(nil)
		m.tokens.EXPECT().Sign(int64(3)).Return(models.Token{}, errors.New("no key"))

		_, err := svc.Login(ctx, req)
		assert.Equal(t, KindInternal, KindOf(err))
	})

	t.Run("missing password", func(t *testing.T) {
		svc, _ := newTestUserSvc(t)

		_, err := svc.Login(ctx, models.LoginRequest{Email: req.Email})
		assert.Equal(t, KindInvalidInput, KindOf(err))
	})
}

// ── Update / Delete ───────────────────────────────────────────────────────────

func TestUserService_Update_ForeignTargetIsForbiddenWithoutLookup(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.Update(context.Background(), 1, 2, models.UserUpdate{Username: strPtr("x")})
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestUserService_Update_SelfMissing(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Update(ctx, 1, 1, models.UserUpdate{})

	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, KindNotFound, serviceErr.Kind)
	assert.Equal(t, MsgUserNotFound, serviceErr.Message)
}

func TestUserService_Update_Success(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	update := models.UserUpdate{Username: strPtr("alice2")}

	m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.users.EXPECT().UpdateUser(ctx, int64(1), update).
		Return(models.User{ID: 1, Username: "alice2", PasswordHash: "hash"}, nil)

	user, err := svc.Update(ctx, 1, 1, update)
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Update_InvalidAfterGuard(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)

	_, err := svc.Update(ctx, 1, 1, models.UserUpdate{Email: strPtr("nope")})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	update := models.UserUpdate{Email: strPtr("bob@mail.com")}

	m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.users.EXPECT().UpdateUser(ctx, int64(1), update).Return(models.User{}, store.ErrEmailAlreadyUsed)

	_, err := svc.Update(ctx, 1, 1, update)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUserService_Update_SchemaRejectsValue(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	update := models.UserUpdate{Username: strPtr("alice2")}

	m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.users.EXPECT().UpdateUser(ctx, int64(1), update).Return(models.User{}, fmt.Errorf("%w: value too long", store.ErrConstraintViolation))

	_, err := svc.Update(ctx, 1, 1, update)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestUserService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign without lookup", func(t *testing.T) {
		svc, _ := newTestUserSvc(t)
		assert.Equal(t, KindForbidden, KindOf(svc.Authorize(ctx, 1, 2)))
	})

	t.Run("self missing", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, store.ErrUserNotFound)
		assert.Equal(t, KindNotFound, KindOf(svc.Authorize(ctx, 1, 1)))
	})

	t.Run("self", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
		assert.NoError(t, svc.Authorize(ctx, 1, 1))
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign", func(t *testing.T) {
		svc, _ := newTestUserSvc(t)
		_, err := svc.Delete(ctx, 1, 2)
		assert.Equal(t, KindForbidden, KindOf(err))
	})

	t.Run("self", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
		m.users.EXPECT().DeleteUser(ctx, int64(1)).Return(nil)

		msg, err := svc.Delete(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, MsgUserDeleted, msg)
	})

	t.Run("vanished between check and delete", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
		m.users.EXPECT().DeleteUser(ctx, int64(1)).Return(store.ErrUserNotFound)

		_, err := svc.Delete(ctx, 1, 1)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}
