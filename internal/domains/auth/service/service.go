package service

import (
	"context"
	"fmt"

	"epsec/config"
	"epsec/infras/otel"
	"epsec/internal/domains/auth/model/dto"
	sessionService "epsec/internal/domains/session/service"
	userModel "epsec/internal/domains/user/model"
	userDto "epsec/internal/domains/user/model/dto"
	userRepo "epsec/internal/domains/user/repository"
	"epsec/shared"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	"epsec/shared/password"
	"epsec/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	RegisterAdmin(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context, sessionToken string) error
	Me(ctx context.Context, userID string) (userDto.UserResponse, error)
	UpdateProfile(ctx context.Context, req userDto.UpdateProfileRequest, userID string) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID, sessionToken string) error
	ListAdmins(ctx context.Context, req gDto.QueryParams) (userDto.GetUsersResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	sessions sessionService.Session
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, sessions sessionService.Session, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	return s.register(ctx, req, constant.RoleUser)
}

// RegisterAdmin creates an admin account. The route is restricted to
// existing admins.
func (s *serviceImpl) RegisterAdmin(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	return s.register(ctx, req, constant.RoleAdmin)
}

func (s *serviceImpl) register(ctx context.Context, req dto.RegisterRequest, role string) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	salt, hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(constant.ContextGuest, role, hash, salt)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return res, fmt.Errorf("failed to issue session: %w", err)
	}

	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// Same message for unknown email and wrong password, so login
	// cannot be used to probe registered addresses.
	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.PasswordHash, user.PasswordSalt); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return res, fmt.Errorf("failed to issue session: %w", err)
	}

	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.sessions.Revoke(ctx, sessionToken); err != nil {
		log.Error().Err(err).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context, userID string) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req userDto.UpdateProfileRequest, userID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (userDto.UpdateProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	exist, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// ChangePassword verifies the current password, stores a fresh
// salt+hash pair and revokes every other session of the user. The
// session performing the change stays valid.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID, sessionToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.PasswordHash, user.PasswordSalt); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	salt, hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := map[string]any{
		userModel.FieldPasswordHash: hash,
		userModel.FieldPasswordSalt: salt,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    userID,
	}

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	if err = s.sessions.RevokeAllExcept(ctx, userID, sessionToken); err != nil {
		log.Error().Err(err).Msg("failed to revoke other sessions")

		return fmt.Errorf("failed to revoke other sessions: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListAdmins(ctx context.Context, req gDto.QueryParams) (res userDto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAdmins")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(constant.RoleAdmin, userModel.FieldRole, userModel.TableName)

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, fmt.Errorf("failed to count admins: %w", err)
	}

	models, err := s.userRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, fmt.Errorf("failed to get admins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}
