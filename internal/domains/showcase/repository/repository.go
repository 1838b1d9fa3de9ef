package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/internal/domains/showcase/model"
	gDto "robles/shared/dto"
	gRepo "robles/shared/repository"
)

type ShowcaseImage interface {
	Insert(ctx context.Context, model model.ShowcaseImage) error
	InsertBulk(ctx context.Context, models []model.ShowcaseImage) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.ShowcaseImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ShowcaseImage, error)
	MaxInt(ctx context.Context, column string, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ShowcaseImage]
	db   *postgres.Connection
	otel otel.Otel
}

// New builds a repository bound to one showcase table.
func New(collection model.Collection, db *postgres.Connection, otel otel.Otel) ShowcaseImage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ShowcaseImage](collection.EntityName, collection.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
