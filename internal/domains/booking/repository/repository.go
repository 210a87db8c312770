package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"epsec/infras/otel"
	"epsec/infras/postgres"
	"epsec/internal/domains/booking/model"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/logger"
	gRepo "epsec/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	SumTotalPrice(ctx context.Context, filter gDto.FilterGroup) (float64, error)
	RevenueByUser(ctx context.Context) ([]model.UserRevenue, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) SumTotalPrice(ctx context.Context, filter gDto.FilterGroup) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumTotalPrice")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s %s", model.FieldTotalPrice, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (booking revenue): %w", err)
	}
	defer prepare.Close()

	var total float64
	if err := prepare.GetContext(ctx, &total, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	return total, nil
}

// RevenueByUser aggregates confirmed revenue per customer, guests
// grouped by contact email.
func (repo *repositoryImpl) RevenueByUser(ctx context.Context) ([]model.UserRevenue, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RevenueByUser")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s, %s, %s, COALESCE(SUM(%s), 0) AS total_revenue, COUNT(*) AS bookings FROM %s WHERE %s = $1 GROUP BY %s, %s, %s ORDER BY total_revenue DESC",
		model.FieldUserID, model.FieldFullName, model.FieldEmail, model.FieldTotalPrice, model.TableName, model.FieldStatus,
		model.FieldUserID, model.FieldFullName, model.FieldEmail,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.UserRevenue
	if err := repo.db.Read.SelectContext(ctx, &rows, query, model.StatusConfirmed); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to aggregate revenue by user: %w", err)
	}

	return rows, nil
}
