package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository каталог услуг и дополнительных опций салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServices получает услуги салона по списку ID.
// Отсутствующие ID просто не попадают в результат.
// Длительность хранится текстом ("45 min", "1 hour", "30") и парсится с дефолтом 60 минут.
func (r *Repository) GetServices(ctx context.Context, vendorID string, ids []string) (map[string]domain.ServiceRequest, error) {
	services := make(map[string]domain.ServiceRequest, len(ids))
	if len(ids) == 0 {
		return services, nil
	}

	query, args, err := psqlbuilder.Select("id", "name", "duration", "COALESCE(price, 0)").
		From("services").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			svc      domain.ServiceRequest
			duration sql.NullString
		)
		if err := rows.Scan(&svc.ID, &svc.Name, &duration, &svc.Price); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}

		svc.DurationMinutes = serviceDuration(duration)
		services[svc.ID] = svc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetAddOns получает дополнительные опции по списку ID вместе с услугой-владельцем.
// Длительность опции без значения = 0.
func (r *Repository) GetAddOns(ctx context.Context, ids []string) (map[string]domain.AddOn, error) {
	addOns := make(map[string]domain.AddOn, len(ids))
	if len(ids) == 0 {
		return addOns, nil
	}

	query, args, err := psqlbuilder.Select("id", "service_id", "name", "duration_minutes", "COALESCE(price, 0)").
		From("add_ons").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			addOn    domain.AddOn
			duration sql.NullInt64
		)
		if err := rows.Scan(&addOn.ID, &addOn.ServiceID, &addOn.Name, &duration, &addOn.Price); err != nil {
			return nil, fmt.Errorf("%w: GetAddOns - scan row: %v", ErrScanRow, err)
		}

		addOn.DurationMinutes = addOnDuration(duration)
		addOns[addOn.ID] = addOn
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAddOns - rows error: %v", ErrScanRow, err)
	}

	return addOns, nil
}

// serviceDuration длительность услуги всегда положительная и не длиннее суток
func serviceDuration(raw sql.NullString) int {
	if !raw.Valid {
		return types.DefaultDurationMinutes
	}
	minutes := types.ParseDuration(raw.String, types.DefaultDurationMinutes)
	if minutes <= 0 || minutes > types.MinutesPerDay {
		return types.DefaultDurationMinutes
	}
	return minutes
}

// addOnDuration длительность опции: пустая, отрицательная или длиннее суток дает 0
func addOnDuration(raw sql.NullInt64) int {
	if !raw.Valid || raw.Int64 <= 0 || raw.Int64 > types.MinutesPerDay {
		return 0
	}
	return int(raw.Int64)
}
