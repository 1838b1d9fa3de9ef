package venue

import (
	"net/http"

	"robles/infras/otel"
	"robles/internal/domains/venue/model/dto"
	"robles/internal/domains/venue/service"
	"robles/internal/handlers/form"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/validator"
	"robles/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const paramArrangementID = "arrangement_id"

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Patch("/{id}", handler.UpdateVenue)
		routerGroup.Delete("/{id}", handler.DeleteVenue)
		routerGroup.Post("/{id}/image", handler.UploadVenueImage)
		routerGroup.Delete("/{id}/image", handler.DeleteVenueImage)
		routerGroup.Post("/{id}/gallery", handler.UploadVenueGallery)
		routerGroup.Delete("/{id}/gallery", handler.DeleteVenueGalleryImage)

		routerGroup.Route("/{id}/capacity-arrangements", func(arrangementGroup chi.Router) {
			arrangementGroup.Get("/", handler.GetArrangements)
			arrangementGroup.Post("/", handler.CreateArrangement)
			arrangementGroup.Patch("/{arrangement_id}", handler.UpdateArrangement)
			arrangementGroup.Delete("/{arrangement_id}", handler.DeleteArrangement)
		})
	})
}

// CreateVenue registers a new event venue.
func (handler *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	var req dto.CreateVenueRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue created successfully")

	response.WithJSON(w, http.StatusCreated, venue)
}

func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	venues, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venues retrieved successfully")

	response.WithJSON(w, http.StatusOK, venues)
}

func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	venue, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue retrieved successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

func (handler *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateVenueRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue updated successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

// DeleteVenue removes a venue, its stored images, and its capacity
// arrangements.
func (handler *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue deleted successfully")

	response.WithMessage(w, http.StatusOK, "Salón eliminado")
}

func (handler *Handler) UploadVenueImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadVenueImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	file, err := form.SingleFile(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.UploadImage(ctx, id, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload venue image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue image uploaded successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

func (handler *Handler) DeleteVenueImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenueImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	venue, err := handler.service.DeleteImage(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete venue image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue image deleted successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

func (handler *Handler) UploadVenueGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadVenueGallery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	files, err := form.Files(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded files")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.UploadGallery(ctx, id, files)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload venue gallery")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue gallery uploaded successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

func (handler *Handler) DeleteVenueGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenueGalleryImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	imageURL := r.URL.Query().Get(constant.RequestParamImageURL)

	venue, err := handler.service.DeleteGalleryImage(ctx, id, imageURL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete venue gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue gallery image deleted successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

// GetArrangements lists a venue's capacity arrangements ordered for display.
func (handler *Handler) GetArrangements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArrangements")
	defer scope.End()

	venueID := chi.URLParam(r, constant.RequestParamID)

	arrangements, err := handler.service.GetArrangements(ctx, venueID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrangements")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Arrangements retrieved successfully")

	response.WithJSON(w, http.StatusOK, arrangements)
}

func (handler *Handler) CreateArrangement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArrangement")
	defer scope.End()

	venueID := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateArrangementRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	arrangement, err := handler.service.CreateArrangement(ctx, venueID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create arrangement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Arrangement created successfully")

	response.WithJSON(w, http.StatusCreated, arrangement)
}

func (handler *Handler) UpdateArrangement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArrangement")
	defer scope.End()

	venueID := chi.URLParam(r, constant.RequestParamID)
	arrangementID := chi.URLParam(r, paramArrangementID)

	var req dto.UpdateArrangementRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	arrangement, err := handler.service.UpdateArrangement(ctx, venueID, arrangementID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update arrangement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Arrangement updated successfully")

	response.WithJSON(w, http.StatusOK, arrangement)
}

func (handler *Handler) DeleteArrangement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArrangement")
	defer scope.End()

	venueID := chi.URLParam(r, constant.RequestParamID)
	arrangementID := chi.URLParam(r, paramArrangementID)

	if err := handler.service.DeleteArrangement(ctx, venueID, arrangementID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete arrangement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Arrangement deleted successfully")

	response.WithMessage(w, http.StatusOK, "Acomodación eliminada")
}
