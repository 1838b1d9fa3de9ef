package service

import (
	"context"

	"robles/infras/otel"
	"robles/internal/domains/contact/model"
	"robles/internal/domains/contact/model/dto"
	"robles/internal/domains/contact/repository"
	"robles/shared"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgContactMessageNotFound = "Mensaje no encontrado"

type ContactMessage interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) (dto.ContactMessageResponse, error)
	GetAll(ctx context.Context) ([]dto.ContactMessageResponse, error)
	Get(ctx context.Context, id string) (dto.ContactMessageResponse, error)
}

type serviceImpl struct {
	repo repository.ContactMessage
	otel otel.Otel
}

func New(repo repository.ContactMessage, otel otel.Otel) ContactMessage {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel()

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to insert contact message")

		return res, err
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, err
	}

	return dto.ContactMessagesFromModels(messages), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return res, err
	}

	if message.ID == constant.Empty {
		return res, failure.NotFound(msgContactMessageNotFound)
	}

	res.FromModel(message)

	return res, nil
}
