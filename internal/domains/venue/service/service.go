package service

import (
	"context"
	"fmt"
	"strings"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/storage"
	"robles/internal/domains/venue/model"
	"robles/internal/domains/venue/model/dto"
	"robles/internal/domains/venue/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetVenue    = "venue:get"
	cacheGetAllVenue = "venue:get_all"

	msgVenueNotFound       = "Salón no encontrado"
	msgVenueNameRequired   = "El nombre del salón es obligatorio"
	msgArrangementNotFound = "Acomodación no encontrada"
	msgGalleryURLRequired  = "image_url es obligatorio"
	msgGalleryImageMissing = "Imagen no encontrada en la galería"
)

type Venue interface {
	Create(ctx context.Context, req dto.CreateVenueRequest) (dto.VenueResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.VenueResponse, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateVenueRequest) (dto.VenueResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, file gDto.FileUpload) (dto.VenueResponse, error)
	DeleteImage(ctx context.Context, id string) (dto.VenueResponse, error)
	UploadGallery(ctx context.Context, id string, files []gDto.FileUpload) (dto.VenueResponse, error)
	DeleteGalleryImage(ctx context.Context, id, imageURL string) (dto.VenueResponse, error)

	GetArrangements(ctx context.Context, venueID string) ([]dto.ArrangementResponse, error)
	CreateArrangement(ctx context.Context, venueID string, req dto.CreateArrangementRequest) (dto.ArrangementResponse, error)
	UpdateArrangement(ctx context.Context, venueID, arrangementID string, req dto.UpdateArrangementRequest) (dto.ArrangementResponse, error)
	DeleteArrangement(ctx context.Context, venueID, arrangementID string) error
}

type serviceImpl struct {
	repo    repository.Venue
	arrRepo repository.Arrangement
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.Venue, arrRepo repository.Arrangement, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) Venue {
	return &serviceImpl{
		repo:    repo,
		arrRepo: arrRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(req.Name) == "" {
		return res, failure.BadRequestFromString(msgVenueNameRequired)
	}

	venue := req.ToModel()

	if err = s.repo.Insert(ctx, venue); err != nil {
		log.Error().Err(err).Msg("failed to insert venue")

		return res, err
	}

	s.invalidate(ctx, venue.ID)

	res.FromModel(venue)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVenue, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	venues, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, err
	}

	res = dto.VenuesFromModels(venues)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venues to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVenue, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(venue)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateVenueRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	return s.applyUpdate(ctx, venue.ID, shared.TransformFields(req))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return err
	}

	// Arrangements go with the venue via the FK cascade.
	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete venue")

		return err
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if venue.Image != nil {
			s.deleteObject(c, *venue.Image)
		}

		if venue.Gallery != nil {
			for _, url := range shared.SplitList(*venue.Gallery) {
				s.deleteObject(c, url)
			}
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, file gDto.FileUpload) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := s.storage.Save(ctx, file.File, model.TableName+"/"+id, "main", file.Filename, file.ContentType)
	if err != nil {
		log.Error().Err(err).Msg("failed to store venue image")

		return res, fmt.Errorf("failed to store venue image: %w", err)
	}

	if venue.Image != nil {
		s.deleteObject(ctx, *venue.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: url})
}

func (s *serviceImpl) DeleteImage(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	if venue.Image != nil {
		s.deleteObject(ctx, *venue.Image)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldImage: nil})
}

func (s *serviceImpl) UploadGallery(ctx context.Context, id string, files []gDto.FileUpload) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.UploadGallery")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	gallery := []string{}
	if venue.Gallery != nil {
		gallery = shared.SplitList(*venue.Gallery)
	}

	for _, file := range files {
		if file.Filename == "" {
			continue
		}

		url, err := s.storage.Save(ctx, file.File, model.TableName+"/"+id, "gallery", file.Filename, file.ContentType)
		if err != nil {
			log.Error().Err(err).Msg("failed to store venue gallery image")

			return res, fmt.Errorf("failed to store venue gallery image: %w", err)
		}

		gallery = append(gallery, url)
	}

	return s.applyUpdate(ctx, id, map[string]any{model.FieldGallery: shared.JoinList(gallery)})
}

func (s *serviceImpl) DeleteGalleryImage(ctx context.Context, id, imageURL string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.DeleteGalleryImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return res, failure.BadRequestFromString(msgGalleryURLRequired)
	}

	gallery := []string{}
	if venue.Gallery != nil {
		gallery = shared.SplitList(*venue.Gallery)
	}

	remaining, removed := shared.RemoveURL(gallery, imageURL)
	if !removed {
		return res, failure.NotFound(msgGalleryImageMissing)
	}

	s.deleteObject(ctx, imageURL)

	return s.applyUpdate(ctx, id, map[string]any{model.FieldGallery: shared.JoinList(remaining)})
}

func (s *serviceImpl) GetArrangements(ctx context.Context, venueID string) (res []dto.ArrangementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.GetArrangements")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getVenue(ctx, venueID); err != nil {
		return res, err
	}

	arrangements, err := s.arrRepo.GetAll(ctx, arrangementOrdering(), filterByVenue(venueID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity arrangements")

		return res, err
	}

	return dto.ArrangementsFromModels(arrangements), nil
}

func (s *serviceImpl) CreateArrangement(ctx context.Context, venueID string, req dto.CreateArrangementRequest) (res dto.ArrangementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.CreateArrangement")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getVenue(ctx, venueID); err != nil {
		return res, err
	}

	arrangement := req.ToModel(venueID)

	if err = s.arrRepo.Insert(ctx, arrangement); err != nil {
		log.Error().Err(err).Msg("failed to insert capacity arrangement")

		return res, err
	}

	res.FromModel(arrangement)

	return res, nil
}

func (s *serviceImpl) UpdateArrangement(ctx context.Context, venueID, arrangementID string, req dto.UpdateArrangementRequest) (res dto.ArrangementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.UpdateArrangement")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByVenueAndArrangement(venueID, arrangementID)

	arrangement, err := s.arrRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity arrangement")

		return res, err
	}

	if arrangement.ID == constant.Empty {
		return res, failure.NotFound(msgArrangementNotFound)
	}

	updatedFields := map[string]any{}

	if req.Name != nil {
		updatedFields[model.ArrangementFieldName] = *req.Name
	}

	if req.Capacity != nil {
		updatedFields[model.ArrangementFieldCapacity] = *req.Capacity
	}

	if req.LayoutType != nil {
		updatedFields[model.ArrangementFieldLayoutType] = *req.LayoutType
	}

	if schema := dto.NullJSON(req.LayoutSchema); schema.Valid {
		updatedFields[model.ArrangementFieldLayoutSchema] = schema
	}

	if req.SortOrder != nil {
		updatedFields[model.ArrangementFieldSortOrder] = *req.SortOrder
	}

	if len(updatedFields) > 0 {
		if err = s.arrRepo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update capacity arrangement")

			return res, err
		}
	}

	arrangement, err = s.arrRepo.Get(ctx, filter)
	if err != nil {
		return res, err
	}

	res.FromModel(arrangement)

	return res, nil
}

func (s *serviceImpl) DeleteArrangement(ctx context.Context, venueID, arrangementID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.DeleteArrangement")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByVenueAndArrangement(venueID, arrangementID)

	arrangement, err := s.arrRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity arrangement")

		return err
	}

	if arrangement.ID == constant.Empty {
		return failure.NotFound(msgArrangementNotFound)
	}

	if err = s.arrRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete capacity arrangement")

		return err
	}

	return nil
}

func (s *serviceImpl) getVenue(ctx context.Context, id string) (model.Venue, error) {
	venue, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return venue, err
	}

	if venue.ID == constant.Empty {
		return venue, failure.NotFound(msgVenueNotFound)
	}

	return venue, nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, id string, fields map[string]any) (res dto.VenueResponse, err error) {
	if len(fields) > 0 {
		if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update venue")

			return res, err
		}

		s.invalidate(ctx, id)
	}

	venue, err := s.getVenue(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(venue)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVenue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete venue cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenue)
	}()
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete stored image")
	}
}

func arrangementOrdering() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.ArrangementFieldSortOrder + ", " + model.ArrangementFieldName,
		SortDir: gDto.SortDirAsc,
	}
}

func filterByVenue(venueID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ArrangementFieldVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ArrangementTableName,
			},
		},
	}
}

func filterByVenueAndArrangement(venueID, arrangementID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ArrangementFieldID,
				Value:    arrangementID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ArrangementTableName,
			},
			gDto.Filter{
				ArgName:  "venue_id",
				Field:    model.ArrangementFieldVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ArrangementTableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
