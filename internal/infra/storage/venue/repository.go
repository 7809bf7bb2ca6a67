package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
)

// Repository репозиторий площадок и их тарифов (только чтение, CRUD тарифов вне сервиса)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"open_hour",
		"close_hour",
		"slot_step_minutes",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var venue domain.Venue
	var timezone sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&venue.ID,
		&venue.Name,
		&venue.OpenHour,
		&venue.CloseHour,
		&venue.SlotStepMinutes,
		&timezone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	venue.Timezone = timezone.String
	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

// GetPricingRules получает таблицу тарифов площадки по дням недели
func (r *Repository) GetPricingRules(ctx context.Context, venueID int64) ([]domain.PricingRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"venue_id",
		"day_of_week",
		"mode",
		"hourly_rate",
		"full_day_rate",
		"minimum_hours",
	).
		From("venue_pricing_rules").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPricingRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPricingRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.PricingRule, 0, 7)
	for rows.Next() {
		var rule domain.PricingRule
		var dayOfWeek int
		var mode string
		var hourly, fullDay, minHours sql.NullFloat64

		if err := rows.Scan(&rule.VenueID, &dayOfWeek, &mode, &hourly, &fullDay, &minHours); err != nil {
			return nil, fmt.Errorf("%w: GetPricingRules - scan row: %v", ErrScanRow, err)
		}

		rule.DayOfWeek = time.Weekday(dayOfWeek)
		rule.Mode = domain.PricingMode(mode)
		rule.HourlyRate = nullFloat(hourly)
		rule.FullDayRate = nullFloat(fullDay)
		rule.MinimumHours = nullFloat(minHours)

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPricingRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
