package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsDaily is one synthetic traffic row, keyed by calendar day.
type AnalyticsDaily struct {
	Day            time.Time       `db:"day" json:"day"`
	Visitors       int             `db:"visitors" json:"visitors"`
	Leads          int             `db:"leads" json:"leads"`
	Orders         int             `db:"orders" json:"orders"`
	ConversionRate decimal.Decimal `db:"conversion_rate" json:"conversionRate"`
}
