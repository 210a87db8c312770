package user

import (
	"net/http"

	"epsec/infras/otel"
	"epsec/internal/domains/user/model"
	"epsec/internal/domains/user/model/dto"
	"epsec/internal/domains/user/service"
	"epsec/shared/constant"
	gDto "epsec/shared/dto"
	"epsec/shared/failure"
	"epsec/shared/validator"
	"epsec/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamDestinationID = "destinationID"

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})

	router.Route("/favorites", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFavorites)
		routerGroup.Post("/", handler.AddFavorite)
		routerGroup.Delete("/{destinationID}", handler.RemoveFavorite)
	})
}

// GetUsers retrieves all user accounts based on query parameters.
// @Summary Get all users
// @Description Retrieve all user accounts with optional filtering and pagination.
// @Tags User
// @Accept json
// @Produce json
// @Param email query string false "Filter by email"
// @Param role query string false "Filter by role"
// @Success 200 {object} dto.GetUsersResponse "List of users"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	email := r.URL.Query().Get(model.FieldEmail)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}

	if role := r.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteUser deletes a user account and everything attached to it.
// @Summary Delete a user
// @Description Delete a user account together with its sessions, bookings,
// @Description inquiries and favorites. Admin accounts cannot be deleted.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "User deleted successfully")
}

// GetFavorites retrieves the signed-in user's favorite destinations.
// @Summary Get favorite destinations
// @Description Retrieve the destinations the signed-in user has marked as favorites.
// @Tags Favorite
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetFavoritesResponse "List of favorite destinations"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites [get]
// @Security BearerAuth
func (handler *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFavorites")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	res, err := handler.service.GetFavorites(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get favorites")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddFavorite marks a destination as a favorite of the signed-in user.
// @Summary Add a favorite destination
// @Description Mark a destination as favorite. Adding the same destination twice is a no-op.
// @Tags Favorite
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Add Favorite Request"
// @Success 201 {object} response.Message "Favorite added successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites [post]
// @Security BearerAuth
func (handler *Handler) AddFavorite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("missing user identity"))

		return
	}

	req := dto.AddFavoriteRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AddFavorite(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Favorite added successfully by user " + userID)

	response.WithMessage(writer, http.StatusCreated, "Favorite added successfully")
}

// RemoveFavorite removes a destination from the signed-in user's favorites.
// @Summary Remove a favorite destination
// @Description Remove a destination from the signed-in user's favorites.
// @Tags Favorite
// @Accept json
// @Produce json
// @Param destinationID path string true "Destination ID"
// @Success 200 {object} response.Message "Favorite removed successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/favorites/{destinationID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFavorite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFavorite")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("missing user identity"))

		return
	}

	destinationID := chi.URLParam(request, requestParamDestinationID)

	if err := handler.service.RemoveFavorite(ctx, destinationID, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove favorite")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Favorite removed successfully by user " + userID)

	response.WithMessage(writer, http.StatusOK, "Favorite removed successfully")
}
