package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/internal/domains/dining/model"
	gDto "robles/shared/dto"
	gRepo "robles/shared/repository"
)

type DiningArea interface {
	Insert(ctx context.Context, model model.DiningArea) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.DiningArea, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.DiningArea, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DiningArea]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DiningArea {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DiningArea](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
