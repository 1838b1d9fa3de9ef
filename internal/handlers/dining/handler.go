package dining

import (
	"net/http"

	"robles/infras/otel"
	"robles/internal/domains/dining/model/dto"
	"robles/internal/domains/dining/service"
	"robles/internal/handlers/form"
	"robles/shared/constant"
	"robles/shared/validator"
	"robles/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DiningArea
	otel    otel.Otel
}

func New(service service.DiningArea, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dining-areas", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDiningArea)
		routerGroup.Get("/", handler.GetDiningAreas)
		routerGroup.Patch("/{id}", handler.UpdateDiningArea)
		routerGroup.Delete("/{id}", handler.DeleteDiningArea)
		routerGroup.Post("/{id}/image", handler.UploadDiningAreaImage)
	})
}

func (handler *Handler) CreateDiningArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDiningArea")
	defer scope.End()

	var req dto.CreateDiningAreaRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	area, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create dining area")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining area created successfully")

	response.WithJSON(w, http.StatusCreated, area)
}

func (handler *Handler) GetDiningAreas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDiningAreas")
	defer scope.End()

	areas, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dining areas")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining areas retrieved successfully")

	response.WithJSON(w, http.StatusOK, areas)
}

func (handler *Handler) UpdateDiningArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDiningArea")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateDiningAreaRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	area, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update dining area")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining area updated successfully")

	response.WithJSON(w, http.StatusOK, area)
}

func (handler *Handler) DeleteDiningArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDiningArea")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete dining area")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining area deleted successfully")

	response.WithMessage(w, http.StatusOK, "Área eliminada")
}

func (handler *Handler) UploadDiningAreaImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDiningAreaImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	file, err := form.SingleFile(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, err)

		return
	}

	area, err := handler.service.UploadImage(ctx, id, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload dining area image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining area image uploaded successfully")

	response.WithJSON(w, http.StatusOK, area)
}
