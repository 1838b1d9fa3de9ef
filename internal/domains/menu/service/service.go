package service

import (
	"context"
	"fmt"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/storage"
	"robles/internal/domains/menu/model"
	"robles/internal/domains/menu/model/dto"
	"robles/internal/domains/menu/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetMenuItem    = "menu_item:get"
	cacheGetAllMenuItem = "menu_item:get_all"

	msgMenuItemNotFound = "Item no encontrado"
	msgMenuItemIDTaken  = "Ya existe un item con ese id"
)

type MenuItem interface {
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (dto.MenuItemResponse, error)
	GetAll(ctx context.Context, category string) ([]dto.MenuItemResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (dto.MenuItemResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, file gDto.FileUpload) (dto.MenuItemResponse, error)
}

type serviceImpl struct {
	repo    repository.MenuItem
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.MenuItem, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) MenuItem {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	item := req.ToModel()

	exists, err := s.repo.Exist(ctx, shared.FilterByID(item.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu item id")

		return res, err
	}

	if exists {
		return res, failure.Conflict(msgMenuItemIDTaken)
	}

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to insert menu item")

		return res, err
	}

	s.invalidate(ctx, item.ID)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, category string) (res []dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if category != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMenuItem, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	items, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, err
	}

	res = dto.MenuItemsFromModels(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getItem(ctx, id); err != nil {
		return res, err
	}

	return s.applyUpdate(ctx, id, shared.TransformFields(req))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return err
	}

	s.invalidate(ctx, id)

	if item.Image != nil {
		go s.deleteObject(context.WithoutCancel(ctx), *item.Image)
	}

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, file gDto.FileUpload) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := s.storage.Save(ctx, file.File, "menu/"+id, "menu", file.Filename, file.ContentType)
	if err != nil {
		log.Error().Err(err).Msg("failed to store menu item image")

		return res, fmt.Errorf("failed to store menu item image: %w", err)
	}

	if item.Image != nil {
		s.deleteObject(ctx, *item.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: url})
}

func (s *serviceImpl) getItem(ctx context.Context, id string) (model.MenuItem, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return item, err
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound(msgMenuItemNotFound)
	}

	return item, nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, id string, fields map[string]any) (res dto.MenuItemResponse, err error) {
	if len(fields) > 0 {
		if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update menu item")

			return res, err
		}

		s.invalidate(ctx, id)
	}

	item, err := s.getItem(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMenuItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete menu item cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenuItem)
	}()
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete stored image")
	}
}
