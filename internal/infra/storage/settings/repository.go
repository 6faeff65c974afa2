package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"company_id",
	"branch_id",
	"start_hour",
	"end_hour",
	"slot_interval",
	"density_factor",
	"layout_mode",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек календаря
type Repository struct {
	db      DBExecutor
	driver  string
	builder squirrel.StatementBuilderType
	now     func() time.Time
}

// NewRepository создает репозиторий для указанного драйвера (postgres или sqlite3)
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		driver:  driver,
		builder: psqlbuilder.ForDriver(driver),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create создает настройки компании или филиала
func (r *Repository) Create(ctx context.Context, s *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	now := r.now()

	query, args, err := r.builder.Insert(tableName).
		Columns(
			"company_id",
			"branch_id",
			"start_hour",
			"end_hour",
			"slot_interval",
			"density_factor",
			"layout_mode",
			"created_at",
			"updated_at",
		).
		Values(
			s.CompanyID,
			s.BranchID,
			s.StartHour,
			s.EndHour,
			s.SlotInterval,
			s.DensityFactor,
			string(s.LayoutMode),
			now,
			now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *s
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	return &created, nil
}

// GetByID получает настройки по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarSettings, error) {
	query, args, err := r.builder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByCompanyAndBranch получает настройки ровно указанного уровня:
// branchID == nil - настройки компании, иначе - настройки филиала
func (r *Repository) GetByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error) {
	selectBuilder := r.builder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"company_id": companyID})

	// Фильтрация по branch_id (NULL или конкретное значение)
	if branchID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *branchID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyAndBranch - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyAndBranch - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetWithHierarchy получает настройки с учетом иерархии:
// 1. Настройки филиала (если branchID указан)
// 2. Настройки компании
//
// Если настройки не найдены ни на одном уровне, возвращает ErrSettingsNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error) {
	if branchID != nil {
		s, err := r.GetByCompanyAndBranch(ctx, companyID, branchID)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: GetWithHierarchy - branch level: %v", ErrExecQuery, err)
		}
	}

	s, err := r.GetByCompanyAndBranch(ctx, companyID, nil)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - company level: %v", ErrExecQuery, err)
	}

	return nil, ErrSettingsNotFound
}

// GetAllByCompany получает все настройки компании, настройки компании первыми
func (r *Repository) GetAllByCompany(ctx context.Context, companyID int64) ([]*domain.CalendarSettings, error) {
	query, args, err := r.builder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("COALESCE(branch_id, 0) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.CalendarSettings, 0)
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByCompany - scan row: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByCompany - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет значения настроек
func (r *Repository) Update(ctx context.Context, id int64, s *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	now := r.now()

	query, args, err := r.builder.Update(tableName).
		Set("start_hour", s.StartHour).
		Set("end_hour", s.EndHour).
		Set("slot_interval", s.SlotInterval).
		Set("density_factor", s.DensityFactor).
		Set("layout_mode", string(s.LayoutMode)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSettingsNotFound
	}

	return r.GetByID(ctx, id)
}

// DeleteByCompanyAndBranch удаляет настройки ровно указанного уровня
func (r *Repository) DeleteByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) error {
	deleteBuilder := r.builder.Delete(tableName).
		Where(squirrel.Eq{"company_id": companyID})

	if branchID == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"branch_id": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"branch_id": *branchID})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCompanyAndBranch - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByCompanyAndBranch - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCompanyAndBranch - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.CalendarSettings, error) {
	var (
		s          domain.CalendarSettings
		branchID   sql.NullInt64
		layoutMode string
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.CompanyID,
		&branchID,
		&s.StartHour,
		&s.EndHour,
		&s.SlotInterval,
		&s.DensityFactor,
		&layoutMode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if branchID.Valid {
		id := branchID.Int64
		s.BranchID = &id
	}
	s.LayoutMode = domain.LayoutMode(layoutMode)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
