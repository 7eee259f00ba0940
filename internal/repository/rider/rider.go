package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = `id, name, email, district, application_status, work_status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (name, email, district, application_status, work_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Email,
		riderModifyModel.District,
		riderModifyModel.ApplicationStatus,
		riderModifyModel.WorkStatus,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE id = $1`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Email,
			&riderModel.District,
			&riderModel.ApplicationStatus,
			&riderModel.WorkStatus,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

// List фильтрует заявки райдеров. Сопоставление без учета регистра —
// обе стороны приводятся к LOWER.
func (r *Repository) List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	builder := qb.
		Select("id", "name", "email", "district", "application_status", "work_status",
			"created_at", "updated_at").
		From("riders")

	if filter.ApplicationStatus != nil {
		builder = builder.Where(sq.Expr("LOWER(application_status) = LOWER(?)", *filter.ApplicationStatus))
	}
	if filter.District != nil {
		builder = builder.Where(sq.Expr("LOWER(district) = LOWER(?)", *filter.District))
	}
	if filter.WorkStatus != nil {
		builder = builder.Where(sq.Expr("LOWER(work_status) = LOWER(?)", *filter.WorkStatus))
	}

	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderModel RiderDB
		err := rows.Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Email,
			&riderModel.District,
			&riderModel.ApplicationStatus,
			&riderModel.WorkStatus,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
		}
		riderModels = append(riderModels, riderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	builder := qb.
		Update("riders")

	if riderModifyModel.Name != nil {
		builder = builder.Set("name", riderModifyModel.Name)
	}
	if riderModifyModel.Email != nil {
		builder = builder.Set("email", riderModifyModel.Email)
	}
	if riderModifyModel.District != nil {
		builder = builder.Set("district", riderModifyModel.District)
	}
	if riderModifyModel.ApplicationStatus != nil {
		builder = builder.Set("application_status", riderModifyModel.ApplicationStatus)
	}
	if riderModifyModel.WorkStatus != nil {
		builder = builder.Set("work_status", riderModifyModel.WorkStatus)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModifyModel.ID}).
		Suffix("RETURNING " + riderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	var riderModel RiderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Email,
			&riderModel.District,
			&riderModel.ApplicationStatus,
			&riderModel.WorkStatus,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rider.ErrConflict
		}

		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

// UpdateWorkStatusIf переводит work_status райдера атомарно, только из
// ожидаемого состояния. Возвращает ErrRiderNotAvailable если райдер
// отсутствует или уже не в ожидаемом статусе.
func (r *Repository) UpdateWorkStatusIf(
	ctx context.Context,
	id int64,
	from, to entities.RiderWorkStatusType,
) (*entities.Rider, error) {
	query := `UPDATE riders
		SET work_status = $1, updated_at = NOW()
		WHERE id = $2 AND work_status = $3
		RETURNING ` + riderColumns

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, to.String(), id, from.String()).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Email,
			&riderModel.District,
			&riderModel.ApplicationStatus,
			&riderModel.WorkStatus,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotAvailable
		}

		return nil, fmt.Errorf("unexpected rider repository workstatus error: %w", err)
	}

	return ToDomain(&riderModel), nil
}
