package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/internal/domains/venue/model"
	gDto "robles/shared/dto"
	gRepo "robles/shared/repository"
)

type Venue interface {
	Insert(ctx context.Context, model model.Venue) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Venue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Venue, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Arrangement interface {
	Insert(ctx context.Context, model model.CapacityArrangement) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.CapacityArrangement, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CapacityArrangement, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type venueRepositoryImpl struct {
	gRepo.Repository[model.Venue]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Venue {
	return &venueRepositoryImpl{
		Repository: gRepo.NewRepository[model.Venue](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type arrangementRepositoryImpl struct {
	gRepo.Repository[model.CapacityArrangement]
	db   *postgres.Connection
	otel otel.Otel
}

func NewArrangement(db *postgres.Connection, otel otel.Otel) Arrangement {
	return &arrangementRepositoryImpl{
		Repository: gRepo.NewRepository[model.CapacityArrangement](model.ArrangementEntityName, model.ArrangementTableName, model.ArrangementFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
