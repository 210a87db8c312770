package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"epsec/config"
	"epsec/infras/otel"
	"epsec/internal/domains/session/model"
	"epsec/internal/domains/session/model/dto"
	"epsec/internal/domains/session/repository"
	userModel "epsec/internal/domains/user/model"
	userRepo "epsec/internal/domains/user/repository"
	"epsec/shared"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	"epsec/shared/token"
	"epsec/shared/timezone"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

type Session interface {
	Issue(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, sessionToken string) (dto.Identity, error)
	Revoke(ctx context.Context, sessionToken string) error
	RevokeAllExcept(ctx context.Context, userID, keepToken string) error
}

type serviceImpl struct {
	repo     repository.Session
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Session, userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Issue(ctx context.Context, userID string) (sessionToken string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Issue")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionToken, err = token.Generate(s.cfg.Auth.Session.TokenBytes)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := timezone.Now()
	session := model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     sessionToken,
		ExpiresAt: now.Add(time.Duration(s.cfg.Auth.Session.ExpireDays) * hoursPerDay * time.Hour),
		CreatedAt: now,
	}

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to persist session")

		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return sessionToken, nil
}

func (s *serviceImpl) Validate(ctx context.Context, sessionToken string) (identity dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.repo.Get(ctx, s.tokenFilter(sessionToken))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up session")

		return identity, fmt.Errorf("failed to look up session: %w", err)
	}

	// Expired rows are never swept, only rejected here.
	if session.ID == "" || !session.ExpiresAt.After(timezone.Now()) {
		return identity, failure.Unauthorized("invalid or expired session") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(session.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session user")

		return identity, fmt.Errorf("failed to get session user: %w", err)
	}

	if user.ID == "" {
		return identity, failure.Unauthorized("invalid or expired session") //nolint:wrapcheck
	}

	identity = dto.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName(),
		Role:   user.Role,
	}

	return identity, nil
}

func (s *serviceImpl) Revoke(ctx context.Context, sessionToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revoke")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, s.tokenFilter(sessionToken)); err != nil {
		log.Error().Err(err).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *serviceImpl) RevokeAllExcept(ctx context.Context, userID, keepToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevokeAllExcept")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldToken,
				Operator: gDto.FilterOperatorNotEq,
				Value:    keepToken,
				Table:    model.TableName,
			},
		},
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke other sessions")

		return fmt.Errorf("failed to revoke other sessions: %w", err)
	}

	return nil
}

func (s *serviceImpl) tokenFilter(sessionToken string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldToken,
				Operator: gDto.FilterOperatorEq,
				Value:    sessionToken,
				Table:    model.TableName,
			},
		},
	}
}
