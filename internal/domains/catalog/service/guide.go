package service

import (
	"context"
	"fmt"

	"epsec/config"
	"epsec/infras/otel"
	"epsec/internal/domains/catalog/model"
	"epsec/internal/domains/catalog/model/dto"
	"epsec/internal/domains/catalog/repository"
	"epsec/shared"
	"epsec/shared/cache"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuide    = "guide:get"
	cacheGetAllGuide = "guide:gets"
	cacheCountGuide  = "guide:count"
)

type Guide interface {
	Create(ctx context.Context, req dto.CreateGuideRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuidesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuideResponse, error)
	Update(ctx context.Context, req dto.UpdateGuideRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type guideImpl struct {
	repo  repository.Guide
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewGuide(repo repository.Guide, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guide {
	return &guideImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *guideImpl) Create(ctx context.Context, req dto.CreateGuideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create guide")

		return fmt.Errorf("failed to create guide: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide)
		shared.InvalidateCaches(c, s.cache, cacheCountGuide)
	}()

	return nil
}

func (s *guideImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuide, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guides")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guides")

		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guides")

		return res, fmt.Errorf("failed to get guides: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guides to cache")
		}
	}()

	return res, nil
}

func (s *guideImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuide, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guide count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guides")

		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guide count to cache")
		}
	}()

	return res, nil
}

func (s *guideImpl) Get(ctx context.Context, id string) (res dto.GuideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetGuide, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guide")

		return res, nil
	}

	guide, err := s.repo.Get(ctx, shared.FilterByID(id, model.GuideFieldID, model.GuideTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide")

		return res, fmt.Errorf("failed to get guide: %w", err)
	}

	if guide.ID == constant.Empty {
		return res, failure.NotFound("guide not found") // nolint:wrapcheck
	}

	res.FromModel(guide)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guide to cache")
		}
	}()

	return res, nil
}

func (s *guideImpl) Update(ctx context.Context, req dto.UpdateGuideRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.GuideFieldID, model.GuideTableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guide exists")

		return fmt.Errorf("failed to check if guide exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guide not found")

		return failure.NotFound("guide not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guide")

		return fmt.Errorf("failed to update guide: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuide, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guide cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide)
		shared.InvalidateCaches(c, s.cache, cacheCountGuide)
	}()

	return nil
}

func (s *guideImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.GuideFieldID, model.GuideTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guide exists")

		return fmt.Errorf("failed to check if guide exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guide not found")

		return failure.NotFound("guide not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.GuideFieldID, model.GuideTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guide")

		return fmt.Errorf("failed to delete guide: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuide, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guide from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide)
		shared.InvalidateCaches(c, s.cache, cacheCountGuide)
	}()

	return nil
}
