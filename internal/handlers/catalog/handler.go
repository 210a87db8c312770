package catalog

import (
	"net/http"
	"strconv"

	"epsec/infras/otel"
	"epsec/internal/domains/catalog/model"
	"epsec/internal/domains/catalog/model/dto"
	"epsec/internal/domains/catalog/service"
	"epsec/shared"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/validator"
	"epsec/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	destinations service.Destination
	packages     service.Package
	hotels       service.Hotel
	guides       service.Guide
	otel         otel.Otel
}

func New(
	destinations service.Destination,
	packages service.Package,
	hotels service.Hotel,
	guides service.Guide,
	otel otel.Otel,
) Handler {
	return Handler{
		destinations: destinations,
		packages:     packages,
		hotels:       hotels,
		guides:       guides,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{slug}", handler.GetDestinationBySlug)
		routerGroup.Put("/{id}", handler.UpdateDestination)
		routerGroup.Delete("/{id}", handler.DeleteDestination)
		routerGroup.Post("/{id}/gallery", handler.UploadGalleryImage)
	})

	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Put("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
	})

	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Put("/{id}", handler.UpdateHotel)
		routerGroup.Delete("/{id}", handler.DeleteHotel)
	})

	router.Route("/guides", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuide)
		routerGroup.Get("/", handler.GetGuides)
		routerGroup.Get("/{id}", handler.GetGuideByID)
		routerGroup.Put("/{id}", handler.UpdateGuide)
		routerGroup.Delete("/{id}", handler.DeleteGuide)
	})
}

// CreateDestination handles the creation of a new destination.
// @Summary Create a new destination
// @Description Create a new destination with the provided details.
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Message "Destination created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.destinations.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Destination created successfully")
}

// GetDestinations retrieves all destinations based on query parameters.
// @Summary Get all destinations
// @Description Retrieve all destinations with optional filtering and pagination.
// @Tags Destination
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param featured query boolean false "Filter by featured flag"
// @Success 200 {object} dto.GetDestinationsResponse "List of destinations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.DestinationFieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.DestinationFieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.DestinationTableName,
			},
		},
	}

	if category := r.URL.Query().Get(model.DestinationFieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.DestinationFieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.DestinationTableName,
		})
	}

	if featured := shared.ConvertStringToBool(r.URL.Query().Get(model.DestinationFieldFeatured)); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.DestinationFieldFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
			Table:    model.DestinationTableName,
		})
	}

	res, err := handler.destinations.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDestinationBySlug retrieves a destination with its hotels and packages.
// @Summary Get a destination by slug
// @Description Retrieve a destination by its slug, including related hotels and tour packages.
// @Tags Destination
// @Accept json
// @Produce json
// @Param slug path string true "Destination Slug"
// @Success 200 {object} dto.DestinationDetailResponse "Destination detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{slug} [get]
func (handler *Handler) GetDestinationBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	res, err := handler.destinations.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destination by slug")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateDestination handles updating an existing destination.
// @Summary Update a destination
// @Description Update an existing destination with the provided details.
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Message "Destination updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateDestinationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.destinations.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Destination updated successfully")
}

// DeleteDestination handles deleting a destination.
// @Summary Delete a destination
// @Description Delete a destination by its ID.
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Message "Destination deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.destinations.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Destination deleted successfully")
}

// UploadGalleryImage adds an image to a destination gallery.
// @Summary Upload a destination gallery image
// @Description Upload an image file and append it to the destination gallery.
// @Tags Destination
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Destination ID"
// @Param file formData file true "Image file"
// @Success 201 {object} dto.UploadGalleryImageResponse "Uploaded image URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id}/gallery [post]
// @Security BearerAuth
func (handler *Handler) UploadGalleryImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadGalleryImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, header, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, err)

		return
	}
	defer file.Close()

	res, err := handler.destinations.UploadGalleryImage(ctx, id, file, header)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload gallery image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image uploaded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreatePackage handles the creation of a new tour package.
// @Summary Create a new tour package
// @Description Create a new tour package with the provided details.
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Message "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.packages.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Package created successfully")
}

// GetPackages retrieves all tour packages based on query parameters.
// @Summary Get all tour packages
// @Description Retrieve all tour packages with optional filtering and pagination.
// @Tags Package
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param destination_id query string false "Filter by destination"
// @Param featured query boolean false "Filter by featured flag"
// @Success 200 {object} dto.GetPackagesResponse "List of tour packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.PackageFieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.PackageFieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.PackageTableName,
			},
		},
	}

	if destinationID := r.URL.Query().Get(model.PackageFieldDestinationID); destinationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.PackageFieldDestinationID,
			Operator: gDto.FilterOperatorEq,
			Value:    destinationID,
			Table:    model.PackageTableName,
		})
	}

	if featured := shared.ConvertStringToBool(r.URL.Query().Get(model.PackageFieldFeatured)); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.PackageFieldFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
			Table:    model.PackageTableName,
		})
	}

	res, err := handler.packages.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPackageByID retrieves a tour package by its ID.
// @Summary Get a tour package by ID
// @Description Retrieve a single tour package by its ID.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse "Tour package"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.packages.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdatePackage handles updating an existing tour package.
// @Summary Update a tour package
// @Description Update an existing tour package with the provided details.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.packages.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Package updated successfully")
}

// DeletePackage handles deleting a tour package.
// @Summary Delete a tour package
// @Description Delete a tour package by its ID.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.packages.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Package deleted successfully")
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a new hotel with the provided details.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Message "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.hotels.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Hotel created successfully")
}

// GetHotels retrieves all hotels based on query parameters.
// @Summary Get all hotels
// @Description Retrieve all hotels with optional filtering and pagination.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param destination_id query string false "Filter by destination"
// @Param star_rating query integer false "Filter by star rating"
// @Success 200 {object} dto.GetHotelsResponse "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.HotelFieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.HotelFieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.HotelTableName,
			},
		},
	}

	if destinationID := r.URL.Query().Get(model.HotelFieldDestinationID); destinationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.HotelFieldDestinationID,
			Operator: gDto.FilterOperatorEq,
			Value:    destinationID,
			Table:    model.HotelTableName,
		})
	}

	if rating := r.URL.Query().Get(model.HotelFieldStarRating); rating != "" {
		if ratingInt, err := strconv.Atoi(rating); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.HotelFieldStarRating,
				Operator: gDto.FilterOperatorEq,
				Value:    ratingInt,
				Table:    model.HotelTableName,
			})
		}
	}

	res, err := handler.hotels.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a single hotel by its ID.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelResponse "Hotel"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.hotels.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateHotel handles updating an existing hotel.
// @Summary Update a hotel
// @Description Update an existing hotel with the provided details.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.hotels.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel handles deleting a hotel.
// @Summary Delete a hotel
// @Description Delete a hotel by its ID.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.hotels.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Hotel deleted successfully")
}

// CreateGuide handles the creation of a new guide.
// @Summary Create a new guide
// @Description Create a new guide with the provided details.
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body dto.CreateGuideRequest true "Create Guide Request"
// @Success 201 {object} response.Message "Guide created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides [post]
// @Security BearerAuth
func (handler *Handler) CreateGuide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuide")
	defer scope.End()

	req := dto.CreateGuideRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.guides.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guide")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Guide created successfully")
}

// GetGuides retrieves all guides based on query parameters.
// @Summary Get all guides
// @Description Retrieve all guides with optional filtering and pagination.
// @Tags Guide
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetGuidesResponse "List of guides"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides [get]
func (handler *Handler) GetGuides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.GuideFieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.GuideFieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.GuideTableName,
			},
		},
	}

	res, err := handler.guides.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guides")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuideByID retrieves a guide by its ID.
// @Summary Get a guide by ID
// @Description Retrieve a single guide by its ID.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} dto.GuideResponse "Guide"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides/{id} [get]
func (handler *Handler) GetGuideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuideByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.guides.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuide handles updating an existing guide.
// @Summary Update a guide
// @Description Update an existing guide with the provided details.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Param request body dto.UpdateGuideRequest true "Update Guide Request"
// @Success 200 {object} response.Message "Guide updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGuide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuide")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateGuideRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.guides.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guide")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Guide updated successfully")
}

// DeleteGuide handles deleting a guide.
// @Summary Delete a guide
// @Description Delete a guide by its ID.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.Message "Guide deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuide")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.guides.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guide")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Guide deleted successfully")
}
