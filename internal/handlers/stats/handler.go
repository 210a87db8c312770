package stats

import (
	"net/http"

	"epsec/infras/otel"
	"epsec/internal/domains/stats/service"
	"epsec/shared/constant"
	"epsec/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStats)
		routerGroup.Get("/revenue", handler.GetRevenue)
	})
}

// GetStats returns aggregate counters for the admin dashboard.
// @Summary Get dashboard statistics
// @Description Retrieve aggregate entity counts, total revenue and recent bookings.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Dashboard statistics"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRevenue returns the revenue breakdown per user.
// @Summary Get revenue breakdown
// @Description Retrieve total confirmed revenue and the per-user breakdown.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.RevenueResponse "Revenue breakdown"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	res, err := handler.service.Revenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
