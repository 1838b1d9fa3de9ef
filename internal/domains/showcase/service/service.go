package service

import (
	"context"
	"fmt"
	"time"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/storage"
	"robles/internal/domains/showcase/model"
	"robles/internal/domains/showcase/model/dto"
	"robles/internal/domains/showcase/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgShowcaseImageNotFound = "Imagen no encontrada"

type ShowcaseImage interface {
	GetAll(ctx context.Context) ([]dto.ShowcaseImageResponse, error)
	Upload(ctx context.Context, files []gDto.FileUpload) ([]dto.ShowcaseImageResponse, error)
	Delete(ctx context.Context, imageID string) error
}

type serviceImpl struct {
	collection model.Collection
	repo       repository.ShowcaseImage
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	storage    storage.Storage
}

// New builds a service for one showcase collection. The hero carousel,
// the hotel gallery, and the restaurant gallery all share this behavior.
func New(collection model.Collection, repo repository.ShowcaseImage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) ShowcaseImage {
	return &serviceImpl{
		collection: collection,
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		storage:    storage,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ShowcaseImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".showcase."+s.collection.EntityName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(s.cacheListPrefix(), "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.listOrdered(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save showcase images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Upload(ctx context.Context, files []gDto.FileUpload) (res []dto.ShowcaseImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".showcase."+s.collection.EntityName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	nextOrder, err := s.repo.MaxInt(ctx, model.FieldSortOrder, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get showcase sort order")

		return res, err
	}

	images := []model.ShowcaseImage{}

	for _, file := range files {
		if file.Filename == "" {
			continue
		}

		url, err := s.storage.Save(ctx, file.File, s.collection.SubPath, s.collection.Category, file.Filename, file.ContentType)
		if err != nil {
			log.Error().Err(err).Msg("failed to store showcase image")

			return res, fmt.Errorf("failed to store showcase image: %w", err)
		}

		nextOrder++

		images = append(images, model.ShowcaseImage{
			ID:        shared.NewID(s.collection.IDPrefix, model.IDHexLength),
			ImageURL:  url,
			SortOrder: nextOrder,
			CreatedAt: time.Now(),
		})
	}

	if len(images) > 0 {
		if err = s.repo.InsertBulk(ctx, images); err != nil {
			log.Error().Err(err).Msg("failed to insert showcase images")

			return res, err
		}

		s.invalidate(ctx)
	}

	return s.listOrdered(ctx)
}

func (s *serviceImpl) Delete(ctx context.Context, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".showcase."+s.collection.EntityName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(imageID, model.FieldID, s.collection.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get showcase image")

		return err
	}

	if image.ID == constant.Empty {
		return failure.NotFound(msgShowcaseImageNotFound)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete showcase image")

		return err
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.storage.Delete(c, image.ImageURL); err != nil {
			log.Warn().Err(err).Str("url", image.ImageURL).Msg("failed to delete stored image")
		}
	}()

	return nil
}

func (s *serviceImpl) listOrdered(ctx context.Context) ([]dto.ShowcaseImageResponse, error) {
	images, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldSortOrder,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get showcase images")

		return nil, err
	}

	return dto.ShowcaseImagesFromModels(images), nil
}

func (s *serviceImpl) cacheListPrefix() string {
	return s.collection.EntityName + ":get_all"
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, s.cacheListPrefix())
	}()
}
