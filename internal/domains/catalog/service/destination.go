package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"epsec/config"
	"epsec/infras/otel"
	"epsec/infras/s3"
	"epsec/internal/domains/catalog/model"
	"epsec/internal/domains/catalog/model/dto"
	"epsec/internal/domains/catalog/repository"
	"epsec/shared"
	"epsec/shared/cache"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	gModel "epsec/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetDestination    = "destination:get"
	cacheGetAllDestination = "destination:gets"
	cacheCountDestination  = "destination:count"
)

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DestinationResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.DestinationDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadGalleryImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (dto.UploadGalleryImageResponse, error)
}

type destinationImpl struct {
	repo      repository.Destination
	pkgRepo   repository.Package
	hotelRepo repository.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func NewDestination(
	repo repository.Destination,
	pkgRepo repository.Package,
	hotelRepo repository.Hotel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Destination {
	return &destinationImpl{
		repo:      repo,
		pkgRepo:   pkgRepo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *destinationImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slugFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.DestinationFieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Slug,
				Table:    model.DestinationTableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, slugFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if exists {
		return failure.Conflict("destination slug already in use") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create destination")

		return fmt.Errorf("failed to create destination: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()

	return nil
}

func (s *destinationImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *destinationImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDestination, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination count to cache")
		}
	}()

	return res, nil
}

func (s *destinationImpl) Get(ctx context.Context, id string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetDestination, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination")

		return res, nil
	}

	destination, err := s.repo.Get(ctx, shared.FilterByID(id, model.DestinationFieldID, model.DestinationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	res.FromModel(destination)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination to cache")
		}
	}()

	return res, nil
}

func (s *destinationImpl) GetBySlug(ctx context.Context, slug string) (res dto.DestinationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDestination, "slug", slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination detail")

		return res, nil
	}

	slugFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.DestinationFieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.DestinationTableName,
			},
		},
	}

	destination, err := s.repo.Get(ctx, slugFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination by slug")

		return res, fmt.Errorf("failed to get destination by slug: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	res.DestinationResponse.FromModel(destination)

	relatedParams := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   relatedEntityLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	hotels, err := s.hotelRepo.GetAll(ctx, relatedParams, destinationRefFilter(destination.ID, model.HotelTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination hotels")

		return res, fmt.Errorf("failed to get destination hotels: %w", err)
	}

	packages, err := s.pkgRepo.GetAll(ctx, relatedParams, destinationRefFilter(destination.ID, model.PackageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination packages")

		return res, fmt.Errorf("failed to get destination packages: %w", err)
	}

	res.Hotels = make([]dto.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		res.Hotels[i].FromModel(hotel)
	}

	res.Packages = make([]dto.PackageResponse, len(packages))
	for i, pkg := range packages {
		res.Packages[i].FromModel(pkg)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination detail to cache")
		}
	}()

	return res, nil
}

func (s *destinationImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.DestinationFieldID, model.DestinationTableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination existence")

		return fmt.Errorf("failed to check destination existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("destination not found")

		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination")

		return fmt.Errorf("failed to update destination: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDestination, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete destination cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetDestination)
		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()

	return nil
}

func (s *destinationImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.DestinationFieldID, model.DestinationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if !exist {
		log.Error().Msg("destination not found")

		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.DestinationFieldID, model.DestinationTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete destination")

		return fmt.Errorf("failed to delete destination: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDestination, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete destination from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetDestination)
		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()

	return nil
}

func (s *destinationImpl) UploadGalleryImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (res dto.UploadGalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadGalleryImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.DestinationFieldID, model.DestinationTableName)

	destination, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	// Get original extension
	parts := strings.Split(header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.DestinationEntityName, file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload gallery image to S3")

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	gallery := append(gModel.StringList{}, destination.GalleryImages...)
	gallery = append(gallery, url)

	updatedFields := shared.TransformFields(dto.UpdateDestinationRequest{GalleryImages: gallery}, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination gallery")

		_ = s.s3.DeleteFile(ctx, bucketName, model.DestinationEntityName, filename)

		return res, fmt.Errorf("failed to update destination gallery: %w", err)
	}

	res.URL = url

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDestination, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete destination cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetDestination)
		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
	}()

	return res, nil
}
