package di

import (
	"robles/config"
	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/infras/storage"
	showcaseModel "robles/internal/domains/showcase/model"
	showcaseRepository "robles/internal/domains/showcase/repository"
	showcaseService "robles/internal/domains/showcase/service"
	showcaseHandler "robles/internal/handlers/showcase"
	"robles/shared/cache"
)

// provideShowcaseHandler wires the three showcase collections by hand; wire
// cannot distinguish multiple bindings of the same service type.
func provideShowcaseHandler(db *postgres.Connection, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel, store storage.Storage) showcaseHandler.Handler {
	newCollection := func(collection showcaseModel.Collection) showcaseService.ShowcaseImage {
		repo := showcaseRepository.New(collection, db, otl)

		return showcaseService.New(collection, repo, cfg, redisCache, otl, store)
	}

	return showcaseHandler.New(
		newCollection(showcaseModel.HeroCarousel),
		newCollection(showcaseModel.Gallery),
		newCollection(showcaseModel.RestaurantGallery),
		otl,
	)
}
