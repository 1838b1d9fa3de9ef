package hotelinfo

import (
	"net/http"

	"robles/infras/otel"
	"robles/internal/domains/hotelinfo/model/dto"
	"robles/internal/domains/hotelinfo/service"
	"robles/shared/constant"
	"robles/shared/validator"
	"robles/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.HotelInfo
	otel    otel.Otel
}

func New(service service.HotelInfo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel-info", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotelInfo)
		routerGroup.Patch("/", handler.UpdateHotelInfo)
	})
}

// GetHotelInfo returns the hotel's contact card, falling back to the
// published defaults when nothing has been saved yet.
func (handler *Handler) GetHotelInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelInfo")
	defer scope.End()

	info, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel info retrieved successfully")

	response.WithJSON(w, http.StatusOK, info)
}

func (handler *Handler) UpdateHotelInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotelInfo")
	defer scope.End()

	var req dto.UpdateHotelInfoRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	info, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel info updated successfully")

	response.WithJSON(w, http.StatusOK, info)
}
