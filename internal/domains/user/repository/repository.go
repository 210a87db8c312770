package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"epsec/infras/otel"
	"epsec/infras/postgres"
	"epsec/internal/domains/user/model"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/logger"
	gRepo "epsec/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return tx, nil
}

type Favorite interface {
	Upsert(ctx context.Context, model model.Favorite) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Favorite, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Favorite, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type favoriteRepositoryImpl struct {
	gRepo.Repository[model.Favorite]
	db   *postgres.Connection
	otel otel.Otel
}

func NewFavorite(db *postgres.Connection, otel otel.Otel) Favorite {
	return &favoriteRepositoryImpl{
		Repository: gRepo.NewRepository[model.Favorite](model.FavoriteEntityName, model.FavoriteTableName, model.FavoriteFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts a favorite, ignoring duplicates of (user_id, destination_id).
func (repo *favoriteRepositoryImpl) Upsert(ctx context.Context, favorite model.Favorite) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".favorite.Upsert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (id, user_id, destination_id, created_at, modified_at, created_by, modified_by) VALUES (:id, :user_id, :destination_id, :created_at, :modified_at, :created_by, :modified_by) ON CONFLICT (user_id, destination_id) DO NOTHING",
		model.FavoriteTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, favorite)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert favorite: %w", err)
	}

	return nil
}
