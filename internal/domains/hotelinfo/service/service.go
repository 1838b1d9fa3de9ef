package service

import (
	"context"

	"robles/config"
	"robles/infras/otel"
	"robles/internal/domains/hotelinfo/model"
	"robles/internal/domains/hotelinfo/model/dto"
	"robles/internal/domains/hotelinfo/repository"
	"robles/shared"
	"robles/shared/cache"
	"robles/shared/constant"
	gDto "robles/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotelInfo = "hotel_info:get"
)

type HotelInfo interface {
	Get(ctx context.Context) (dto.HotelInfoResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelInfoRequest) (dto.HotelInfoResponse, error)
}

type serviceImpl struct {
	repo  repository.HotelInfo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.HotelInfo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) HotelInfo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.HotelInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotelinfo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHotelInfo, &res)
	if err == nil {
		return res, nil
	}

	info, err := s.repo.Get(ctx, rowFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel info")

		return res, err
	}

	if info.ID == 0 {
		info = model.Default()
	}

	res.FromModel(info)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHotelInfo, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel info to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelInfoRequest) (res dto.HotelInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotelinfo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	info, err := s.repo.Get(ctx, rowFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel info")

		return res, err
	}

	if info.ID == 0 {
		info = model.Default()

		if err = s.repo.Insert(ctx, info); err != nil {
			log.Error().Err(err).Msg("failed to seed hotel info")

			return res, err
		}
	}

	fields := shared.TransformFields(req)

	if len(fields) > 0 {
		if err = s.repo.Update(ctx, fields, rowFilter()); err != nil {
			log.Error().Err(err).Msg("failed to update hotel info")

			return res, err
		}

		info, err = s.repo.Get(ctx, rowFilter())
		if err != nil {
			return res, err
		}

		s.invalidate(ctx)
	}

	res.FromModel(info)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHotelInfo); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel info cache")
		}
	}()
}

func rowFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    model.RowID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
