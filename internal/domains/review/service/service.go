package service

import (
	"context"
	"strings"

	"robles/infras/otel"
	"robles/internal/domains/review/model"
	"robles/internal/domains/review/model/dto"
	"robles/internal/domains/review/repository"
	"robles/shared"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgReviewNotFound   = "Reseña no encontrada"
	msgInvalidGuestName = "Nombre inválido"
	msgCommentTooShort  = "El comentario debe tener al menos 10 caracteres"

	minGuestNameLength = 2
	minCommentLength   = 10
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, approvedOnly bool, limit int) ([]dto.ReviewResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(strings.TrimSpace(req.GuestName)) < minGuestNameLength {
		return res, failure.BadRequestFromString(msgInvalidGuestName)
	}

	if len(strings.TrimSpace(req.Comment)) < minCommentLength {
		return res, failure.BadRequestFromString(msgCommentTooShort)
	}

	review := req.ToModel()

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to insert review")

		return res, err
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, approvedOnly bool, limit int) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if approvedOnly {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsApproved,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if limit < model.MinLimit {
		limit = model.MinLimit
	}

	if limit > model.MaxLimit {
		limit = model.MaxLimit
	}

	reviews, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, err
	}

	return dto.ReviewsFromModels(reviews), nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	review, err := s.getReview(ctx, filter)
	if err != nil {
		return res, err
	}

	if req.IsApproved != nil {
		if err = s.repo.Update(ctx, map[string]any{model.FieldIsApproved: *req.IsApproved}, filter); err != nil {
			log.Error().Err(err).Msg("failed to update review")

			return res, err
		}

		review.IsApproved = *req.IsApproved
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if _, err = s.getReview(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return err
	}

	return nil
}

func (s *serviceImpl) getReview(ctx context.Context, filter gDto.FilterGroup) (model.Review, error) {
	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return review, err
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound(msgReviewNotFound)
	}

	return review, nil
}
