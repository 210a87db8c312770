package service_test

import (
	"context"
	"errors"
	"testing"

	"epsec/config"
	"epsec/infras/otel/mocks"
	bookingMocks "epsec/internal/domains/booking/mocks"
	bookingModel "epsec/internal/domains/booking/model"
	catalogMocks "epsec/internal/domains/catalog/mocks"
	inquiryMocks "epsec/internal/domains/inquiry/mocks"
	"epsec/internal/domains/stats/service"
	userMocks "epsec/internal/domains/user/mocks"
	cacheMocks "epsec/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type statsMocks struct {
	userRepo        *userMocks.MockUser
	destinationRepo *catalogMocks.MockDestination
	pkgRepo         *catalogMocks.MockPackage
	hotelRepo       *catalogMocks.MockHotel
	guideRepo       *catalogMocks.MockGuide
	bookingRepo     *bookingMocks.MockBooking
	inquiryRepo     *inquiryMocks.MockInquiry
	cache           *cacheMocks.MockRedisCache
}

func newStatsService(ctrl *gomock.Controller) (service.Stats, statsMocks) {
	m := statsMocks{
		userRepo:        userMocks.NewMockUser(ctrl),
		destinationRepo: catalogMocks.NewMockDestination(ctrl),
		pkgRepo:         catalogMocks.NewMockPackage(ctrl),
		hotelRepo:       catalogMocks.NewMockHotel(ctrl),
		guideRepo:       catalogMocks.NewMockGuide(ctrl),
		bookingRepo:     bookingMocks.NewMockBooking(ctrl),
		inquiryRepo:     inquiryMocks.NewMockInquiry(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.userRepo, m.destinationRepo, m.pkgRepo, m.hotelRepo, m.guideRepo, m.bookingRepo, m.inquiryRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestStatsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newStatsService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss aggregates all counters",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
				m.destinationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
				m.pkgRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(8, nil)
				m.hotelRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
				m.guideRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

				// Total, pending and confirmed booking counts.
				m.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(20, nil)
				m.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil)
				m.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)

				m.inquiryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

				m.bookingRepo.EXPECT().
					SumTotalPrice(gomock.Any(), gomock.Any()).
					Return(640000.0, nil)

				m.bookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1", Status: bookingModel.StatusPending}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "user count error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.userRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.name == "cache miss aggregates all counters" {
				assert.Equal(t, 12, res.Users)
				assert.Equal(t, 5, res.Destinations)
				assert.Equal(t, 20, res.TotalBookings)
				assert.Equal(t, 6, res.PendingBookings)
				assert.Equal(t, 11, res.ConfirmedBookings)
				assert.Equal(t, 2, res.NewInquiries)
				assert.InDelta(t, 640000.0, res.TotalRevenue, 0.001)
				assert.Len(t, res.RecentBookings, 1)
			}
		})
	}
}

func TestStatsService_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newStatsService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful revenue aggregation",
			setupMock: func() {
				m.bookingRepo.EXPECT().
					SumTotalPrice(gomock.Any(), gomock.Any()).
					Return(640000.0, nil)

				m.bookingRepo.EXPECT().
					RevenueByUser(gomock.Any()).
					Return([]bookingModel.UserRevenue{
						{Email: "abebe@example.com", TotalRevenue: 400000, Bookings: 2},
						{Email: "tirunesh@example.com", TotalRevenue: 240000, Bookings: 1},
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "sum error",
			setupMock: func() {
				m.bookingRepo.EXPECT().
					SumTotalPrice(gomock.Any(), gomock.Any()).
					Return(0.0, errors.New("sum error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Revenue(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, 640000.0, res.TotalRevenue, 0.001)
				assert.Len(t, res.UserRevenue, 2)
			}
		})
	}
}
