package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/internal/domains/booking/model"
	gDto "robles/shared/dto"
	gRepo "robles/shared/repository"
)

type WebBooking interface {
	Insert(ctx context.Context, model model.WebBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.WebBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.WebBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumFloat(ctx context.Context, column string, filter gDto.FilterGroup) (float64, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WebBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) WebBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WebBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
