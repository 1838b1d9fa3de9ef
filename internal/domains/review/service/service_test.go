package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/infras/otel/mocks"
	reviewMocks "robles/internal/domains/review/mocks"
	"robles/internal/domains/review/model"
	"robles/internal/domains/review/model/dto"
	"robles/internal/domains/review/service"
	gDto "robles/shared/dto"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.Review, *reviewMocks.MockReview) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := reviewMocks.NewMockReview(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateReviewRequest
		setupMock  func(repo *reviewMocks.MockReview)
		wantErr    bool
		wantCode   int
		wantRating int
	}{
		{
			name: "rating above five clamps to five",
			req: dto.CreateReviewRequest{
				GuestName: "  Ana  ",
				Rating:    9,
				Comment:   "Excelente atención y habitaciones.",
			},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "Ana", review.GuestName)
						assert.Equal(t, 5, review.Rating)
						assert.False(t, review.IsApproved)
						return nil
					})
			},
			wantRating: 5,
		},
		{
			name: "single character name rejected",
			req: dto.CreateReviewRequest{
				GuestName: " A ",
				Rating:    4,
				Comment:   "Excelente atención y habitaciones.",
			},
			setupMock: func(repo *reviewMocks.MockReview) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "short comment rejected",
			req: dto.CreateReviewRequest{
				GuestName: "Ana",
				Rating:    4,
				Comment:   "Bien",
			},
			setupMock: func(repo *reviewMocks.MockReview) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRating, res.Rating)
				assert.False(t, res.IsApproved)
			}
		})
	}
}

func TestReviewService_GetAll_ClampsLimit(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Review, error) {
			assert.Equal(t, 100, params.Limit)
			assert.Empty(t, filter.Filters)
			return []model.Review{}, nil
		})

	_, err := svc.GetAll(context.Background(), false, 500)

	require.NoError(t, err)
}

func TestReviewService_GetAll_ApprovedOnly(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Review, error) {
			assert.Equal(t, 1, params.Limit)
			require.Len(t, filter.Filters, 1)
			return []model.Review{}, nil
		})

	_, err := svc.GetAll(context.Background(), true, 0)

	require.NoError(t, err)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

	approved := true

	_, err := svc.Update(context.Background(), "review-ghost", dto.UpdateReviewRequest{IsApproved: &approved})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
