package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"epsec/infras/otel"
	"epsec/infras/postgres"
	"epsec/internal/domains/catalog/model"
	gDto "epsec/shared/dto"
	gRepo "epsec/shared/repository"
)

type Destination interface {
	Insert(ctx context.Context, model model.Destination) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type destinationRepositoryImpl struct {
	gRepo.Repository[model.Destination]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDestination(db *postgres.Connection, otel otel.Otel) Destination {
	return &destinationRepositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.DestinationEntityName, model.DestinationTableName, model.DestinationFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Package interface {
	Insert(ctx context.Context, model model.Package) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Package, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type packageRepositoryImpl struct {
	gRepo.Repository[model.Package]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPackage(db *postgres.Connection, otel otel.Otel) Package {
	return &packageRepositoryImpl{
		Repository: gRepo.NewRepository[model.Package](model.PackageEntityName, model.PackageTableName, model.PackageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type hotelRepositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func NewHotel(db *postgres.Connection, otel otel.Otel) Hotel {
	return &hotelRepositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.HotelEntityName, model.HotelTableName, model.HotelFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Guide interface {
	Insert(ctx context.Context, model model.Guide) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guide, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guide, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type guideRepositoryImpl struct {
	gRepo.Repository[model.Guide]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGuide(db *postgres.Connection, otel otel.Otel) Guide {
	return &guideRepositoryImpl{
		Repository: gRepo.NewRepository[model.Guide](model.GuideEntityName, model.GuideTableName, model.GuideFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
