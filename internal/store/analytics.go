package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

type analyticsStore struct {
	*MYSQLStore
}

// Analytics returns an object implementing the Analytics interface
func (ms *MYSQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{
		MYSQLStore: ms,
	}
}

func (as *analyticsStore) GetDaily(ctx context.Context) ([]entity.AnalyticsDaily, error) {
	query := `
	SELECT day, visitors, leads, orders, conversion_rate
	FROM analytics_daily
	ORDER BY day ASC`

	rows, err := QueryListNamed[entity.AnalyticsDaily](ctx, as.DB(), query, map[string]any{})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []entity.AnalyticsDaily{}, nil
		}
		return nil, fmt.Errorf("failed to query analytics: %w", err)
	}
	if rows == nil {
		rows = []entity.AnalyticsDaily{}
	}
	return rows, nil
}

func (as *analyticsStore) UpsertDaily(ctx context.Context, rows []entity.AnalyticsDaily) error {
	query := `
	INSERT INTO analytics_daily (day, visitors, leads, orders, conversion_rate)
	VALUES (:day, :visitors, :leads, :orders, :conversionRate)
	ON DUPLICATE KEY UPDATE
		visitors = VALUES(visitors),
		leads = VALUES(leads),
		orders = VALUES(orders),
		conversion_rate = VALUES(conversion_rate)`

	for _, row := range rows {
		err := ExecNamed(ctx, as.DB(), query, map[string]any{
			"day":            row.Day.Format("2006-01-02"),
			"visitors":       row.Visitors,
			"leads":          row.Leads,
			"orders":         row.Orders,
			"conversionRate": row.ConversionRate,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert analytics row: %w", err)
		}
	}
	return nil
}
