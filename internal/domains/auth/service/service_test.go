package service_test

import (
	"context"
	"errors"
	"testing"

	"epsec/config"
	"epsec/infras/otel/mocks"
	"epsec/internal/domains/auth/model/dto"
	"epsec/internal/domains/auth/service"
	sessionMocks "epsec/internal/domains/session/service/mocks"
	userMocks "epsec/internal/domains/user/mocks"
	userModel "epsec/internal/domains/user/model"
	userDto "epsec/internal/domains/user/model/dto"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	gModel "epsec/shared/model"
	"epsec/shared/password"
	"epsec/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testUser(t *testing.T, pwd string) userModel.User {
	t.Helper()

	salt, hash, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	return userModel.User{
		ID:           "test-user-id",
		Email:        "abebe@example.com",
		PasswordHash: hash,
		PasswordSalt: salt,
		FirstName:    "Abebe",
		LastName:     "Bikila",
		Role:         constant.RoleUser,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Email:     "abebe@example.com",
				Password:  "secret123",
				FirstName: "Abebe",
				LastName:  "Bikila",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleUser, user.Role)
						assert.NotEqual(t, "secret123", user.PasswordHash)
						assert.NotEmpty(t, user.PasswordSalt)

						return nil
					})

				mockSessions.EXPECT().
					Issue(gomock.Any(), gomock.Any()).
					Return("session-token", nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:     "abebe@example.com",
				Password:  "secret123",
				FirstName: "Abebe",
				LastName:  "Bikila",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.RegisterRequest{
				Email:     "abebe@example.com",
				Password:  "secret123",
				FirstName: "Abebe",
				LastName:  "Bikila",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "session-token", res.Token)
				assert.Equal(t, tt.req.Email, res.User.Email)
			}
		})
	}
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	mockUserRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockUserRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			assert.Equal(t, constant.RoleAdmin, user.Role)

			return nil
		})

	mockSessions.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return("session-token", nil)

	res, err := svc.RegisterAdmin(context.Background(), dto.RegisterRequest{
		Email:     "admin@example.com",
		Password:  "secret123",
		FirstName: "Admin",
		LastName:  "User",
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.RoleAdmin, res.User.Role)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	user := testUser(t, "secret123")

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func()
		wantErr     bool
		wantMessage string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "abebe@example.com", Password: "secret123"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockSessions.EXPECT().
					Issue(gomock.Any(), gomock.Any()).
					Return("session-token", nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "unknown@example.com", Password: "secret123"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:     true,
			wantMessage: "invalid email or password",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "abebe@example.com", Password: "wrong-password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:     true,
			wantMessage: "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				// Unknown email and wrong password must be
				// indistinguishable to the caller.
				if tt.wantMessage != constant.Empty {
					f, ok := err.(*failure.Failure)
					if assert.True(t, ok, "expected *failure.Failure, got %T", err) {
						assert.Equal(t, tt.wantMessage, f.Message)
					}
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "session-token", res.Token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	mockSessions.EXPECT().
		Revoke(gomock.Any(), "session-token").
		Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "session-token"))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	user := testUser(t, "secret123")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful change revokes other sessions",
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "fresh-secret"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockSessions.EXPECT().
					RevokeAllExcept(gomock.Any(), "test-user-id", "session-token").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "fresh-secret"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "fresh-secret"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, "test-user-id", "session-token")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	tests := []struct {
		name      string
		req       userDto.UpdateProfileRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  userDto.UpdateProfileRequest{FirstName: "Tirunesh"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       userDto.UpdateProfileRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "user not found",
			req:  userDto.UpdateProfileRequest{FirstName: "Tirunesh"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateProfile(context.Background(), tt.req, "test-user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_ListAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSessions := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockSessions, cfg, mockOtel)

	admin := testUser(t, "secret123")
	admin.Role = constant.RoleAdmin

	mockUserRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockUserRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]userModel.User{admin}, nil)

	res, err := svc.ListAdmins(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Users, 1)
}
