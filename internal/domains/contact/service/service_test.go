package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/infras/otel/mocks"
	contactMocks "robles/internal/domains/contact/mocks"
	"robles/internal/domains/contact/model"
	"robles/internal/domains/contact/model/dto"
	"robles/internal/domains/contact/service"
	gDto "robles/shared/dto"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.ContactMessage, *contactMocks.MockContactMessage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := contactMocks.NewMockContactMessage(ctrl)

	svc := service.New(mockRepo, mocks.NewOtel())

	return svc, mockRepo
}

func TestContactService_Create(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message model.ContactMessage) error {
			assert.NotEmpty(t, message.ID)
			assert.False(t, message.CreatedAt.IsZero())
			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateContactMessageRequest{
		Name:     "Carlos Mosquera",
		Email:    "carlos@example.com",
		Whatsapp: "+573001234567",
		Subject:  "Evento empresarial",
		Message:  "Quisiera cotizar el salón principal.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos Mosquera", res.Name)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestContactService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.ContactMessage, error) {
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			return []model.ContactMessage{{ID: "contact-1", Name: "Ana"}}, nil
		})

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "contact-1", res[0].ID)
}

func TestContactService_Get_NotFound(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ContactMessage{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
