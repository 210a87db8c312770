package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"epsec/config"
	"epsec/infras/otel/mocks"
	s3Mocks "epsec/infras/s3/mocks"
	catalogMocks "epsec/internal/domains/catalog/mocks"
	"epsec/internal/domains/catalog/model"
	"epsec/internal/domains/catalog/model/dto"
	"epsec/internal/domains/catalog/service"
	cacheMocks "epsec/shared/cache/mocks"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type destinationMocks struct {
	repo      *catalogMocks.MockDestination
	pkgRepo   *catalogMocks.MockPackage
	hotelRepo *catalogMocks.MockHotel
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
}

func newDestinationService(ctrl *gomock.Controller) (service.Destination, destinationMocks) {
	m := destinationMocks{
		repo:      catalogMocks.NewMockDestination(ctrl),
		pkgRepo:   catalogMocks.NewMockPackage(ctrl),
		hotelRepo: catalogMocks.NewMockHotel(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.NewDestination(m.repo, m.pkgRepo, m.hotelRepo, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func TestDestinationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")

	req := dto.CreateDestinationRequest{
		Name: "Lalibela",
		Slug: "lalibela",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful create",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, destination model.Destination) error {
						assert.Equal(t, "lalibela", destination.Slug)
						assert.Equal(t, "admin-user-id", destination.CreatedBy)

						return nil
					})

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "slug already in use",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTotal: 0,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Destination{{ID: "dest-1", Name: "Lalibela", Slug: "lalibela"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestDestinationService_GetBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	destination := model.Destination{
		ID:   "dest-1",
		Name: "Lalibela",
		Slug: "lalibela",
	}

	tests := []struct {
		name      string
		slug      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "found with related hotels and packages",
			slug: "lalibela",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(destination, nil)

				m.hotelRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Hotel{{ID: "hotel-1", Name: "Mountain View"}}, nil)

				m.pkgRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Package{{ID: "package-1", Name: "Rock Churches Tour"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			slug: "nonexistent",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, destination.ID, res.ID)
				assert.Len(t, res.Hotels, 1)
				assert.Len(t, res.Packages, 1)
			}
		})
	}
}

func TestDestinationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "dest-1"}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(ctx, dto.UpdateDestinationRequest{Name: "Lalibela Updated"}, "dest-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_UploadGalleryImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")

	header := &multipart.FileHeader{Filename: "photo.jpg"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantURL   string
	}{
		{
			name: "successful upload appends to gallery",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "dest-1", GalleryImages: gModel.StringList{"https://cdn.example.com/old.jpg"}}, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any(), header, gomock.Any()).
					Return("https://cdn.example.com/new.jpg", nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantURL: "https://cdn.example.com/new.jpg",
		},
		{
			name: "destination not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update failure removes the uploaded file",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "dest-1"}, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any(), header, gomock.Any()).
					Return("https://cdn.example.com/new.jpg", nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UploadGalleryImage(ctx, "dest-1", nil, header)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, res.URL)
			}
		})
	}
}

func TestDestinationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDestinationService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "dest-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
