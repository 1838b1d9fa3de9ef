package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/internal/domains/hotelinfo/model"
	gDto "robles/shared/dto"
	gRepo "robles/shared/repository"
)

type HotelInfo interface {
	Insert(ctx context.Context, model model.HotelInfo) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.HotelInfo, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.HotelInfo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) HotelInfo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HotelInfo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
