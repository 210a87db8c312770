package service

import (
	"context"
	"fmt"

	"epsec/config"
	"epsec/infras/otel"
	bookingModel "epsec/internal/domains/booking/model"
	bookingRepo "epsec/internal/domains/booking/repository"
	catalogModel "epsec/internal/domains/catalog/model"
	catalogRepo "epsec/internal/domains/catalog/repository"
	inquiryModel "epsec/internal/domains/inquiry/model"
	inquiryRepo "epsec/internal/domains/inquiry/repository"
	sessionModel "epsec/internal/domains/session/model"
	sessionRepo "epsec/internal/domains/session/repository"
	"epsec/internal/domains/user/model"
	"epsec/internal/domains/user/model/dto"
	"epsec/internal/domains/user/repository"
	"epsec/shared"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"

	"github.com/rs/zerolog/log"
)

type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Delete(ctx context.Context, id string) error
	GetFavorites(ctx context.Context, userID string) (dto.GetFavoritesResponse, error)
	AddFavorite(ctx context.Context, req dto.AddFavoriteRequest, userID string) error
	RemoveFavorite(ctx context.Context, destinationID, userID string) error
}

type serviceImpl struct {
	repo            repository.User
	favoriteRepo    repository.Favorite
	sessionRepo     sessionRepo.Session
	bookingRepo     bookingRepo.Booking
	inquiryRepo     inquiryRepo.Inquiry
	destinationRepo catalogRepo.Destination
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	repo repository.User,
	favoriteRepo repository.Favorite,
	sessionRepo sessionRepo.Session,
	bookingRepo bookingRepo.Booking,
	inquiryRepo inquiryRepo.Inquiry,
	destinationRepo catalogRepo.Destination,
	cfg *config.Config,
	otel otel.Otel,
) User {
	return &serviceImpl{
		repo:            repo,
		favoriteRepo:    favoriteRepo,
		sessionRepo:     sessionRepo,
		bookingRepo:     bookingRepo,
		inquiryRepo:     inquiryRepo,
		destinationRepo: destinationRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Delete removes a non-admin user and everything owned by them. The
// cascade runs in one transaction so a failure leaves the account
// intact.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if user.Role == constant.RoleAdmin {
		return failure.Forbidden("admin accounts cannot be deleted") // nolint:wrapcheck
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback user delete")
			}
		}
	}()

	if err = s.sessionRepo.DeleteTx(ctx, tx, userRefFilter(id, sessionModel.FieldUserID, sessionModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user sessions")

		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	if err = s.bookingRepo.DeleteTx(ctx, tx, userRefFilter(id, bookingModel.FieldUserID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user bookings")

		return fmt.Errorf("failed to delete user bookings: %w", err)
	}

	if err = s.inquiryRepo.DeleteTx(ctx, tx, userRefFilter(id, inquiryModel.FieldUserID, inquiryModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user inquiries")

		return fmt.Errorf("failed to delete user inquiries: %w", err)
	}

	if err = s.favoriteRepo.DeleteTx(ctx, tx, userRefFilter(id, model.FavoriteFieldUserID, model.FavoriteTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user favorites")

		return fmt.Errorf("failed to delete user favorites: %w", err)
	}

	if err = s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit user delete")

		return fmt.Errorf("failed to commit user delete: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetFavorites(ctx context.Context, userID string) (res dto.GetFavoritesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFavorites")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	favorites, err := s.favoriteRepo.GetAll(ctx, params, userRefFilter(userID, model.FavoriteFieldUserID, model.FavoriteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get favorites")

		return res, fmt.Errorf("failed to get favorites: %w", err)
	}

	res.TotalData = len(favorites)

	if len(favorites) == 0 {
		return res, nil
	}

	ids := make([]string, len(favorites))
	for i, favorite := range favorites {
		ids[i] = favorite.DestinationID
	}

	destinationFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    catalogModel.DestinationFieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    catalogModel.DestinationTableName,
			},
		},
	}

	destinations, err := s.destinationRepo.GetAll(ctx, params, destinationFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get favorite destinations")

		return res, fmt.Errorf("failed to get favorite destinations: %w", err)
	}

	res.FromDestinations(destinations)

	return res, nil
}

func (s *serviceImpl) AddFavorite(ctx context.Context, req dto.AddFavoriteRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddFavorite")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.destinationRepo.Exist(ctx, shared.FilterByID(req.DestinationID, catalogModel.DestinationFieldID, catalogModel.DestinationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination existence")

		return fmt.Errorf("failed to check destination existence: %w", err)
	}

	if !exists {
		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	if err = s.favoriteRepo.Upsert(ctx, req.ToModel(userID)); err != nil {
		log.Error().Err(err).Msg("failed to add favorite")

		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (s *serviceImpl) RemoveFavorite(ctx context.Context, destinationID, userID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveFavorite")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FavoriteFieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.FavoriteTableName,
			},
			gDto.Filter{
				Field:    model.FavoriteFieldDestinationID,
				Operator: gDto.FilterOperatorEq,
				Value:    destinationID,
				Table:    model.FavoriteTableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	exist, err := s.favoriteRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if favorite exists")

		return fmt.Errorf("failed to check if favorite exists: %w", err)
	}

	if !exist {
		return failure.NotFound("favorite not found") // nolint:wrapcheck
	}

	if err := s.favoriteRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove favorite")

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func userRefFilter(userID, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    table,
			},
		},
	}
}
