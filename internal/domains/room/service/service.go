package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/storage"
	"robles/internal/domains/room/model"
	"robles/internal/domains/room/model/dto"
	"robles/internal/domains/room/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:get_all"

	msgRoomNotFound        = "Habitación no encontrada"
	msgRoomNumberRequired  = "El número de habitación es obligatorio"
	msgRoomNumberConflict  = "Ya existe una habitación con ese número"
	msgGalleryURLRequired  = "image_url es obligatorio"
	msgGalleryImageMissing = "Imagen no encontrada en la galería"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, availableOnly bool) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateRoomStatusRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, file gDto.FileUpload) (dto.RoomResponse, error)
	DeleteImage(ctx context.Context, id string) (dto.RoomResponse, error)
	UploadGallery(ctx context.Context, id string, files []gDto.FileUpload) (dto.RoomResponse, error)
	DeleteGalleryImage(ctx context.Context, id, imageURL string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo    repository.Room
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) Room {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	number := strings.TrimSpace(req.Number)
	if number == "" {
		return res, failure.BadRequestFromString(msgRoomNumberRequired)
	}

	exist, err := s.repo.Exist(ctx, filterByNumber(number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return res, err
	}

	if exist {
		return res, failure.Conflict(msgRoomNumberConflict)
	}

	room := req.ToModel()

	if err = s.repo.Insert(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return res, failure.Conflict(msgRoomNumberConflict)
		}

		log.Error().Err(err).Msg("failed to insert room")

		return res, err
	}

	s.invalidate(ctx, room.ID)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, availableOnly bool) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if availableOnly {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    constant.RoomStatusAvailable,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, err
	}

	res = dto.RoomsFromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// Update applies a partial update. An unknown status is silently dropped
// here; only the status-specific endpoint rejects it.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Number != nil {
		number := strings.TrimSpace(*req.Number)
		if number == "" {
			return res, failure.BadRequestFromString(msgRoomNumberRequired)
		}

		taken, err := s.repo.Exist(ctx, filterByNumberExcludingID(number, id))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room number")

			return res, err
		}

		if taken {
			return res, failure.Conflict("Ya existe otra habitación con ese número")
		}

		req.Number = &number
	}

	if req.Floor != nil && *req.Floor < 0 {
		zero := 0
		req.Floor = &zero
	}

	if req.Type != nil {
		roomType := strings.ToLower(strings.TrimSpace(*req.Type))
		if roomType == "" {
			roomType = model.DefaultType
		}

		req.Type = &roomType
	}

	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if model.ValidStatus(status) {
			req.Status = &status
		} else {
			req.Status = nil
		}
	}

	if req.PricePerNight != nil && *req.PricePerNight < 0 {
		zero := 0.0
		req.PricePerNight = &zero
	}

	if req.Capacity != nil && *req.Capacity < 1 {
		one := 1
		req.Capacity = &one
	}

	updatedFields := shared.TransformFields(req)

	if req.Amenities != nil {
		trimmed := strings.TrimSpace(*req.Amenities)
		if trimmed == "" {
			updatedFields[model.FieldAmenities] = nil
		} else {
			updatedFields[model.FieldAmenities] = trimmed
		}
	}

	return s.applyUpdate(ctx, room.ID, updatedFields)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateRoomStatusRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	status := strings.TrimSpace(req.Status)
	if !model.ValidStatus(status) {
		return res, failure.BadRequestFromString("status inválido")
	}

	return s.applyUpdate(ctx, room.ID, map[string]any{model.FieldStatus: status})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return err
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if room.Image != nil {
			s.deleteObject(c, *room.Image)
		}

		if room.Gallery != nil {
			for _, url := range shared.SplitList(*room.Gallery) {
				s.deleteObject(c, url)
			}
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, file gDto.FileUpload) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := s.storage.Save(ctx, file.File, model.TableName+"/"+id, "main", file.Filename, file.ContentType)
	if err != nil {
		log.Error().Err(err).Msg("failed to store room image")

		return res, fmt.Errorf("failed to store room image: %w", err)
	}

	if room.Image != nil {
		s.deleteObject(ctx, *room.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: url})
}

func (s *serviceImpl) DeleteImage(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	if room.Image != nil {
		s.deleteObject(ctx, *room.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: nil})
}

func (s *serviceImpl) UploadGallery(ctx context.Context, id string, files []gDto.FileUpload) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadGallery")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	gallery := []string{}
	if room.Gallery != nil {
		gallery = shared.SplitList(*room.Gallery)
	}

	for _, file := range files {
		if file.Filename == "" {
			continue
		}

		url, err := s.storage.Save(ctx, file.File, model.TableName+"/"+id, "gallery", file.Filename, file.ContentType)
		if err != nil {
			log.Error().Err(err).Msg("failed to store room gallery image")

			return res, fmt.Errorf("failed to store room gallery image: %w", err)
		}

		gallery = append(gallery, url)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldGallery: shared.JoinList(gallery)})
}

func (s *serviceImpl) DeleteGalleryImage(ctx context.Context, id, imageURL string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.DeleteGalleryImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return res, failure.BadRequestFromString(msgGalleryURLRequired)
	}

	gallery := []string{}
	if room.Gallery != nil {
		gallery = shared.SplitList(*room.Gallery)
	}

	remaining, removed := shared.RemoveURL(gallery, imageURL)
	if !removed {
		return res, failure.NotFound(msgGalleryImageMissing)
	}

	s.deleteObject(ctx, imageURL)

	return s.applyUpdate(ctx, id, map[string]any{model.FieldGallery: shared.JoinList(remaining)})
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, err
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(msgRoomNotFound)
	}

	return room, nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, id string, fields map[string]any) (res dto.RoomResponse, err error) {
	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, err
	}

	s.invalidate(ctx, id)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()
}

// deleteObject removes a stored image best effort. A failed delete is logged
// and never surfaces to the caller.
func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete stored image")
	}
}

func filterByNumber(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldNumber,
				Value:    number,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterByNumberExcludingID(number, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldNumber,
				Value:    number,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "exclude_id",
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
