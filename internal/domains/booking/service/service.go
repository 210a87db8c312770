package service

import (
	"context"
	"fmt"
	"time"

	"epsec/config"
	"epsec/infras/kafka"
	"epsec/infras/otel"
	"epsec/internal/domains/booking/model"
	"epsec/internal/domains/booking/model/dto"
	"epsec/internal/domains/booking/pricing"
	"epsec/internal/domains/booking/repository"
	catalogModel "epsec/internal/domains/catalog/model"
	catalogRepo "epsec/internal/domains/catalog/repository"
	"epsec/shared"
	"epsec/shared/cache"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	"epsec/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	maxReferenceAttempts = 5
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, idOrReference string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Booking
	destinationRepo catalogRepo.Destination
	pkgRepo         catalogRepo.Package
	hotelRepo       catalogRepo.Hotel
	guideRepo       catalogRepo.Guide
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	kafka           kafka.Client
}

func New(
	repo repository.Booking,
	destinationRepo catalogRepo.Destination,
	pkgRepo catalogRepo.Package,
	hotelRepo catalogRepo.Hotel,
	guideRepo catalogRepo.Guide,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:            repo,
		destinationRepo: destinationRepo,
		pkgRepo:         pkgRepo,
		hotelRepo:       hotelRepo,
		guideRepo:       guideRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		kafka:           kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	travelDate, err := timezone.Parse(constant.DateOnlyFormat, req.TravelDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid travel date") // nolint:wrapcheck
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, *req.EndDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid end date") // nolint:wrapcheck
		}
		endDate = &parsed
	}

	quote := pricing.Quote{
		AdditionalServices: req.AdditionalServices,
		NumTravelers:       req.NumTravelers,
		TravelDate:         travelDate,
		EndDate:            endDate,
	}

	if req.RoomType != nil {
		quote.RoomType = *req.RoomType
	}

	if req.CarType != nil {
		quote.CarType = *req.CarType
	}

	if req.DestinationID != nil {
		exists, err := s.destinationRepo.Exist(ctx, shared.FilterByID(*req.DestinationID, catalogModel.DestinationFieldID, catalogModel.DestinationTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check destination existence")

			return res, fmt.Errorf("failed to check destination existence: %w", err)
		}

		if !exists {
			return res, failure.BadRequestFromString("destination not found") // nolint:wrapcheck
		}
	}

	if req.PackageID != nil {
		pkg, err := s.pkgRepo.Get(ctx, shared.FilterByID(*req.PackageID, catalogModel.PackageFieldID, catalogModel.PackageTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get package")

			return res, fmt.Errorf("failed to get package: %w", err)
		}

		if pkg.ID == constant.Empty {
			return res, failure.BadRequestFromString("package not found") // nolint:wrapcheck
		}

		quote.PackagePrice = pkg.Price
		quote.PackageDurationDays = pkg.DurationDays
	}

	if req.HotelID != nil {
		exists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(*req.HotelID, catalogModel.HotelFieldID, catalogModel.HotelTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check hotel existence")

			return res, fmt.Errorf("failed to check hotel existence: %w", err)
		}

		if !exists {
			return res, failure.BadRequestFromString("hotel not found") // nolint:wrapcheck
		}
	}

	if req.GuideID != nil {
		guide, err := s.guideRepo.Get(ctx, shared.FilterByID(*req.GuideID, catalogModel.GuideFieldID, catalogModel.GuideTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guide")

			return res, fmt.Errorf("failed to get guide: %w", err)
		}

		if guide.ID == constant.Empty {
			return res, failure.BadRequestFromString("guide not found") // nolint:wrapcheck
		}

		quote.GuideRatePerDay = guide.PricePerDay
	}

	reference, err := s.uniqueReference(ctx)
	if err != nil {
		return res, err
	}

	user := constant.ContextGuest

	var userID *string
	if uid, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && uid != constant.Empty {
		user = uid
		userID = &uid
	}

	booking := req.ToModel(user, userID, reference, travelDate, endDate, quote.Total())

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishCreated(c, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// uniqueReference retries generation until the reference is unused.
// Collisions are vanishingly rare given the nanosecond timestamp, so
// a handful of attempts is plenty.
func (s *serviceImpl) uniqueReference(ctx context.Context) (string, error) {
	for range maxReferenceAttempts {
		reference := model.NewReference()

		exists, err := s.repo.Exist(ctx, referenceFilter(reference))
		if err != nil {
			log.Error().Err(err).Msg("failed to check booking reference")

			return "", fmt.Errorf("failed to check booking reference: %w", err)
		}

		if !exists {
			return reference, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique booking reference after %d attempts", maxReferenceAttempts)
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	event := dto.BookingCreatedEvent{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		Email:            booking.Email,
		FullName:         booking.FullName,
		TravelDate:       booking.TravelDate,
		NumTravelers:     booking.NumTravelers,
		TotalPrice:       booking.TotalPrice,
		CreatedAt:        booking.CreatedAt,
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingCreated, message); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Get resolves a booking by its ID or by its human reference.
func (s *serviceImpl) Get(ctx context.Context, idOrReference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    idOrReference,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingReference,
				Operator: gDto.FilterOperatorEq,
				Value:    idOrReference,
				Table:    model.TableName,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	next := model.Status(req.Status)
	if !booking.Status.CanTransitionTo(next) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func referenceFilter(reference string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingReference,
				Operator: gDto.FilterOperatorEq,
				Value:    reference,
				Table:    model.TableName,
			},
		},
	}
}
