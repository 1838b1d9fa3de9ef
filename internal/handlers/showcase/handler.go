package showcase

import (
	"net/http"

	"robles/infras/otel"
	"robles/internal/domains/showcase/service"
	"robles/internal/handlers/form"
	"robles/shared/constant"
	"robles/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const paramImageID = "image_id"

// Handler serves the three public image showcases. Each collection gets the
// same GET/POST/DELETE surface under its own path.
type Handler struct {
	hero       service.ShowcaseImage
	gallery    service.ShowcaseImage
	restaurant service.ShowcaseImage
	otel       otel.Otel
}

func New(hero, gallery, restaurant service.ShowcaseImage, otel otel.Otel) Handler {
	return Handler{
		hero:       hero,
		gallery:    gallery,
		restaurant: restaurant,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	handler.collectionRouter(router, "/hero-carousel", handler.hero)
	handler.collectionRouter(router, "/gallery", handler.gallery)
	handler.collectionRouter(router, "/restaurant-gallery", handler.restaurant)
}

func (handler *Handler) collectionRouter(router chi.Router, path string, svc service.ShowcaseImage) {
	router.Route(path, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.getImages(svc))
		routerGroup.Post("/", handler.uploadImages(svc))
		routerGroup.Delete("/{image_id}", handler.deleteImage(svc))
	})
}

func (handler *Handler) getImages(svc service.ShowcaseImage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShowcaseImages")
		defer scope.End()

		images, err := svc.GetAll(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to get showcase images")

			response.WithError(w, err)

			return
		}

		scope.AddEvent("Showcase images retrieved successfully")

		response.WithJSON(w, http.StatusOK, images)
	}
}

func (handler *Handler) uploadImages(svc service.ShowcaseImage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadShowcaseImages")
		defer scope.End()

		files, err := form.Files(r)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to read uploaded files")

			response.WithError(w, err)

			return
		}

		images, err := svc.Upload(ctx, files)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to upload showcase images")

			response.WithError(w, err)

			return
		}

		scope.AddEvent("Showcase images uploaded successfully")

		response.WithJSON(w, http.StatusCreated, images)
	}
}

func (handler *Handler) deleteImage(svc service.ShowcaseImage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShowcaseImage")
		defer scope.End()

		imageID := chi.URLParam(r, paramImageID)

		if err := svc.Delete(ctx, imageID); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to delete showcase image")

			response.WithError(w, err)

			return
		}

		scope.AddEvent("Showcase image deleted successfully")

		response.WithMessage(w, http.StatusOK, "Imagen eliminada")
	}
}
