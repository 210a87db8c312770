package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"epsec/config"
	"epsec/infras/otel/mocks"
	sessionMocks "epsec/internal/domains/session/mocks"
	"epsec/internal/domains/session/model"
	"epsec/internal/domains/session/service"
	userMocks "epsec/internal/domains/user/mocks"
	userModel "epsec/internal/domains/user/model"
	"epsec/shared/constant"
	"epsec/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSessionService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Auth.Session.TokenBytes = 32
	cfg.Auth.Session.ExpireDays = 7

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful issue",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, session model.Session) error {
						assert.Equal(t, "test-user-id", session.UserID)
						assert.NotEmpty(t, session.Token)
						assert.True(t, session.ExpiresAt.After(timezone.Now()))

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			sessionToken, err := svc.Issue(context.Background(), "test-user-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, sessionToken)
			} else {
				assert.NoError(t, err)
				// 32 random bytes hex encoded.
				assert.Len(t, sessionToken, 64)
			}
		})
	}
}

func TestSessionService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Auth.Session.TokenBytes = 32
	cfg.Auth.Session.ExpireDays = 7

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	user := userModel.User{
		ID:        "test-user-id",
		Email:     "abebe@example.com",
		FirstName: "Abebe",
		LastName:  "Bikila",
		Role:      constant.RoleUser,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantRole  string
	}{
		{
			name: "valid session",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{
						ID:        "session-id",
						UserID:    "test-user-id",
						Token:     "session-token",
						ExpiresAt: timezone.Now().Add(time.Hour),
						CreatedAt: timezone.Now(),
					}, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  false,
			wantRole: constant.RoleUser,
		},
		{
			name: "unknown token",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{}, nil)
			},
			wantErr: true,
		},
		{
			name: "expired session",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{
						ID:        "session-id",
						UserID:    "test-user-id",
						Token:     "session-token",
						ExpiresAt: timezone.Now().Add(-time.Hour),
						CreatedAt: timezone.Now().Add(-48 * time.Hour),
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "session user no longer exists",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{
						ID:        "session-id",
						UserID:    "deleted-user-id",
						Token:     "session-token",
						ExpiresAt: timezone.Now().Add(time.Hour),
						CreatedAt: timezone.Now(),
					}, nil)

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

			identity, err := svc.Validate(context.Background(), "session-token")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "test-user-id", identity.UserID)
				assert.Equal(t, tt.wantRole, identity.Role)
				assert.Equal(t, "Abebe Bikila", identity.Name)
			}
		})
	}
}

func TestSessionService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, svc.Revoke(context.Background(), "session-token"))
}

func TestSessionService_RevokeAllExcept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, svc.RevokeAllExcept(context.Background(), "test-user-id", "keep-token"))
}
