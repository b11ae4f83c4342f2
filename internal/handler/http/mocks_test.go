package http

import (
	"context"

	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn == nil {
		return models.User{}, &service.Error{Kind: service.KindUnauthenticated, Message: service.MsgUnauthorized}
	}
	return m.authenticateFn(ctx, tokenString)
}

// ---- Mock: UserService ----

type mockUserService struct {
	registerFn  func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn     func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	authorizeFn func(ctx context.Context, requesterID, userID int64) error
	updateFn    func(ctx context.Context, requesterID, userID int64, update models.UserUpdate) (models.User, error)
	deleteFn    func(ctx context.Context, requesterID, userID int64) (string, error)
}

func (m *mockUserService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockUserService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockUserService) Authorize(ctx context.Context, requesterID, userID int64) error {
	if m.authorizeFn == nil {
		return nil
	}
	return m.authorizeFn(ctx, requesterID, userID)
}

func (m *mockUserService) Update(ctx context.Context, requesterID, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, requesterID, userID, update)
}

func (m *mockUserService) Delete(ctx context.Context, requesterID, userID int64) (string, error) {
	return m.deleteFn(ctx, requesterID, userID)
}

// ---- Mock: PhotoService ----

type mockPhotoService struct {
	createFn    func(ctx context.Context, ownerID int64, input models.PhotoInput) (models.Photo, error)
	listFn      func(ctx context.Context) ([]models.PhotoWithRelations, error)
	getFn       func(ctx context.Context, requesterID, photoID int64) (models.Photo, error)
	authorizeFn func(ctx context.Context, requesterID, photoID int64) error
	updateFn    func(ctx context.Context, requesterID, photoID int64, update models.PhotoUpdate) (models.Photo, error)
	deleteFn    func(ctx context.Context, requesterID, photoID int64) (string, error)
}

func (m *mockPhotoService) Create(ctx context.Context, ownerID int64, input models.PhotoInput) (models.Photo, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockPhotoService) List(ctx context.Context) ([]models.PhotoWithRelations, error) {
	return m.listFn(ctx)
}

func (m *mockPhotoService) Get(ctx context.Context, requesterID, photoID int64) (models.Photo, error) {
	return m.getFn(ctx, requesterID, photoID)
}

func (m *mockPhotoService) Authorize(ctx context.Context, requesterID, photoID int64) error {
	if m.authorizeFn == nil {
		return nil
	}
	return m.authorizeFn(ctx, requesterID, photoID)
}

func (m *mockPhotoService) Update(ctx context.Context, requesterID, photoID int64, update models.PhotoUpdate) (models.Photo, error) {
	return m.updateFn(ctx, requesterID, photoID, update)
}

func (m *mockPhotoService) Delete(ctx context.Context, requesterID, photoID int64) (string, error) {
	return m.deleteFn(ctx, requesterID, photoID)
}

// ---- Mock: CommentService ----

type mockCommentService struct {
	createFn    func(ctx context.Context, ownerID int64, input models.CommentInput) (models.Comment, error)
	listFn      func(ctx context.Context, ownerID int64) ([]models.CommentWithRelations, error)
	authorizeFn func(ctx context.Context, requesterID, commentID int64) error
	updateFn    func(ctx context.Context, requesterID, commentID int64, update models.CommentUpdate) (models.Comment, error)
	deleteFn    func(ctx context.Context, requesterID, commentID int64) (string, error)
}

func (m *mockCommentService) Create(ctx context.Context, ownerID int64, input models.CommentInput) (models.Comment, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockCommentService) List(ctx context.Context, ownerID int64) ([]models.CommentWithRelations, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockCommentService) Authorize(ctx context.Context, requesterID, commentID int64) error {
	if m.authorizeFn == nil {
		return nil
	}
	return m.authorizeFn(ctx, requesterID, commentID)
}

func (m *mockCommentService) Update(ctx context.Context, requesterID, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	return m.updateFn(ctx, requesterID, commentID, update)
}

func (m *mockCommentService) Delete(ctx context.Context, requesterID, commentID int64) (string, error) {
	return m.deleteFn(ctx, requesterID, commentID)
}

// ---- Mock: SocialMediaService ----

type mockSocialMediaService struct {
	createFn    func(ctx context.Context, ownerID int64, input models.SocialMediaInput) (models.SocialMedia, error)
	listFn      func(ctx context.Context, ownerID int64) ([]models.SocialMediaWithUser, error)
	authorizeFn func(ctx context.Context, requesterID, socialMediaID int64) error
	updateFn    func(ctx context.Context, requesterID, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error)
	deleteFn    func(ctx context.Context, requesterID, socialMediaID int64) (string, error)
}

func (m *mockSocialMediaService) Create(ctx context.Context, ownerID int64, input models.SocialMediaInput) (models.SocialMedia, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockSocialMediaService) List(ctx context.Context, ownerID int64) ([]models.SocialMediaWithUser, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockSocialMediaService) Authorize(ctx context.Context, requesterID, socialMediaID int64) error {
	if m.authorizeFn == nil {
		return nil
	}
	return m.authorizeFn(ctx, requesterID, socialMediaID)
}

func (m *mockSocialMediaService) Update(ctx context.Context, requesterID, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error) {
	return m.updateFn(ctx, requesterID, socialMediaID, update)
}

func (m *mockSocialMediaService) Delete(ctx context.Context, requesterID, socialMediaID int64) (string, error) {
	return m.deleteFn(ctx, requesterID, socialMediaID)
}
