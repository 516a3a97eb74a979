package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/businesshours/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
)

type BusinessHours interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BusinessHours, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ReplaceForCompany(ctx context.Context, companyID string, models []model.BusinessHours) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BusinessHours]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BusinessHours {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BusinessHours](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceForCompany swaps the company's weekly envelope atomically. The
// delete and the bulk insert share one transaction so readers never see a
// half written week.
func (repo *repositoryImpl) ReplaceForCompany(ctx context.Context, companyID string, models []model.BusinessHours) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReplaceForCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCompanyID,
				Value:    companyID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		return fmt.Errorf("failed to delete business hours: %w", err)
	}

	if err = repo.InsertBulkTx(ctx, tx, models); err != nil {
		return fmt.Errorf("failed to insert business hours: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
