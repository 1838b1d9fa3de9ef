package service

import (
	"context"

	"robles/infras/otel"
	"robles/internal/domains/staff/model"
	"robles/internal/domains/staff/model/dto"
	"robles/internal/domains/staff/repository"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "Credenciales inválidas"

// Local fallback accounts let the panel operate before the staff table
// is provisioned.
var fallbackAccounts = map[string]struct {
	password string
	id       string
	name     string
	role     string
}{
	"admin@robles.com":     {password: "admin123", id: "admin-1", name: "Admin Local", role: "admin"},
	"recepcion@robles.com": {password: "recepcion123", id: "staff-1", name: "Recepcion Local", role: "staff"},
}

type Authenticator interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Authenticator {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Value:    req.Email,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff account")

		return res, err
	}

	if staff.ID != constant.Empty && staff.Password == req.Password {
		res.FromModel(staff)

		return res, nil
	}

	if account, ok := fallbackAccounts[req.Email]; ok && account.password == req.Password {
		return dto.LoginResponse{
			ID:    account.id,
			Email: req.Email,
			Name:  account.name,
			Role:  account.role,
		}, nil
	}

	return res, failure.Unauthorized(msgInvalidCredentials)
}
