package service

import (
	"context"
	"fmt"

	"epsec/config"
	"epsec/infras/otel"
	bookingModel "epsec/internal/domains/booking/model"
	bookingDto "epsec/internal/domains/booking/model/dto"
	bookingRepo "epsec/internal/domains/booking/repository"
	catalogRepo "epsec/internal/domains/catalog/repository"
	inquiryModel "epsec/internal/domains/inquiry/model"
	inquiryRepo "epsec/internal/domains/inquiry/repository"
	"epsec/internal/domains/stats/model/dto"
	userModel "epsec/internal/domains/user/model"
	userRepo "epsec/internal/domains/user/repository"
	"epsec/shared"
	"epsec/shared/cache"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheStats = "stats:get"

	recentBookingsLimit = 10
)

type Stats interface {
	Get(ctx context.Context) (dto.StatsResponse, error)
	Revenue(ctx context.Context) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	userRepo        userRepo.User
	destinationRepo catalogRepo.Destination
	pkgRepo         catalogRepo.Package
	hotelRepo       catalogRepo.Hotel
	guideRepo       catalogRepo.Guide
	bookingRepo     bookingRepo.Booking
	inquiryRepo     inquiryRepo.Inquiry
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	userRepo userRepo.User,
	destinationRepo catalogRepo.Destination,
	pkgRepo catalogRepo.Package,
	hotelRepo catalogRepo.Hotel,
	guideRepo catalogRepo.Guide,
	bookingRepo bookingRepo.Booking,
	inquiryRepo inquiryRepo.Inquiry,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		pkgRepo:         pkgRepo,
		hotelRepo:       hotelRepo,
		guideRepo:       guideRepo,
		bookingRepo:     bookingRepo,
		inquiryRepo:     inquiryRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStats).Msg("cache hit for stats")

		return res, nil
	}

	none := gDto.FilterGroup{}

	if res.Users, err = s.userRepo.Count(ctx, roleFilter(constant.RoleUser)); err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	if res.Destinations, err = s.destinationRepo.Count(ctx, none); err != nil {
		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	if res.Packages, err = s.pkgRepo.Count(ctx, none); err != nil {
		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	if res.Hotels, err = s.hotelRepo.Count(ctx, none); err != nil {
		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	if res.Guides, err = s.guideRepo.Count(ctx, none); err != nil {
		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	if res.TotalBookings, err = s.bookingRepo.Count(ctx, none); err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if res.PendingBookings, err = s.bookingRepo.Count(ctx, statusFilter(bookingModel.StatusPending)); err != nil {
		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	if res.ConfirmedBookings, err = s.bookingRepo.Count(ctx, statusFilter(bookingModel.StatusConfirmed)); err != nil {
		return res, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	if res.NewInquiries, err = s.inquiryRepo.Count(ctx, inquiryStatusFilter(inquiryModel.StatusNew)); err != nil {
		return res, fmt.Errorf("failed to count new inquiries: %w", err)
	}

	if res.TotalRevenue, err = s.bookingRepo.SumTotalPrice(ctx, statusFilter(bookingModel.StatusConfirmed)); err != nil {
		return res, fmt.Errorf("failed to sum confirmed revenue: %w", err)
	}

	recentParams := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   recentBookingsLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	recent, err := s.bookingRepo.GetAll(ctx, recentParams, none)
	if err != nil {
		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, len(recent))
	for i, booking := range recent {
		res.RecentBookings[i].FromModel(booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if res.TotalRevenue, err = s.bookingRepo.SumTotalPrice(ctx, statusFilter(bookingModel.StatusConfirmed)); err != nil {
		return res, fmt.Errorf("failed to sum confirmed revenue: %w", err)
	}

	if res.UserRevenue, err = s.bookingRepo.RevenueByUser(ctx); err != nil {
		return res, fmt.Errorf("failed to aggregate revenue by user: %w", err)
	}

	return res, nil
}

func roleFilter(role string) gDto.FilterGroup {
	return shared.FilterByID(role, userModel.FieldRole, userModel.TableName)
}

func statusFilter(status bookingModel.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func inquiryStatusFilter(status inquiryModel.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    inquiryModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    inquiryModel.TableName,
			},
		},
	}
}
