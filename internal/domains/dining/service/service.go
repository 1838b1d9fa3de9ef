package service

import (
	"context"
	"fmt"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/storage"
	"robles/internal/domains/dining/model"
	"robles/internal/domains/dining/model/dto"
	"robles/internal/domains/dining/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDiningArea    = "dining_area:get"
	cacheGetAllDiningArea = "dining_area:get_all"

	msgDiningAreaNotFound = "Área no encontrada"
	msgDiningAreaIDTaken  = "Ya existe un área con ese id"
)

type DiningArea interface {
	Create(ctx context.Context, req dto.CreateDiningAreaRequest) (dto.DiningAreaResponse, error)
	GetAll(ctx context.Context) ([]dto.DiningAreaResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateDiningAreaRequest) (dto.DiningAreaResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, file gDto.FileUpload) (dto.DiningAreaResponse, error)
}

type serviceImpl struct {
	repo    repository.DiningArea
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.DiningArea, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) DiningArea {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDiningAreaRequest) (res dto.DiningAreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dining.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	area := req.ToModel()

	exists, err := s.repo.Exist(ctx, shared.FilterByID(area.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check dining area id")

		return res, err
	}

	if exists {
		return res, failure.Conflict(msgDiningAreaIDTaken)
	}

	if err = s.repo.Insert(ctx, area); err != nil {
		log.Error().Err(err).Msg("failed to insert dining area")

		return res, err
	}

	s.invalidate(ctx, area.ID)

	res.FromModel(area)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.DiningAreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dining.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllDiningArea, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	areas, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining areas")

		return res, err
	}

	res = dto.DiningAreasFromModels(areas)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dining areas to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateDiningAreaRequest) (res dto.DiningAreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dining.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getArea(ctx, id); err != nil {
		return res, err
	}

	return s.applyUpdate(ctx, id, shared.TransformFields(req))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dining.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	area, err := s.getArea(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete dining area")

		return err
	}

	s.invalidate(ctx, id)

	if area.Image != nil {
		go s.deleteObject(context.WithoutCancel(ctx), *area.Image)
	}

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, file gDto.FileUpload) (res dto.DiningAreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dining.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	area, err := s.getArea(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := s.storage.Save(ctx, file.File, "dining/"+id, "dining", file.Filename, file.ContentType)
	if err != nil {
		log.Error().Err(err).Msg("failed to store dining area image")

		return res, fmt.Errorf("failed to store dining area image: %w", err)
	}

	if area.Image != nil {
		s.deleteObject(ctx, *area.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: url})
}

func (s *serviceImpl) getArea(ctx context.Context, id string) (model.DiningArea, error) {
	area, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining area")

		return area, err
	}

	if area.ID == constant.Empty {
		return area, failure.NotFound(msgDiningAreaNotFound)
	}

	return area, nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, id string, fields map[string]any) (res dto.DiningAreaResponse, err error) {
	if len(fields) > 0 {
		if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update dining area")

			return res, err
		}

		s.invalidate(ctx, id)
	}

	area, err := s.getArea(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(area)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDiningArea, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete dining area cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDiningArea)
	}()
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete stored image")
	}
}
