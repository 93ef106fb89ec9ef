package model

import "time"

// DefaultExchangeRate is reported when no rate has been stored yet.
const DefaultExchangeRate = 1.0

type Settings struct {
	// ARS per USD.
	Rate       float64
	InstallKit []KitItemSpec
	UpdatedAt  time.Time
}

type UpdateRateResult struct {
	Settings *Settings
	// Number of products whose priceARS was rewritten.
	Repriced int64
}
