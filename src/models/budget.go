package models

import "time"

// Budget caps spending for one category over a date window. A nil EndDate
// means the window is open ended and spend is measured up to "now".
type Budget struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"category_id"`
	Amount     string       `json:"amount"`
	StartDate  Date         `json:"start_date"`
	EndDate    *Date        `json:"end_date"`
	CreatedAt  time.Time    `json:"created_at"`
	Category   *CategoryRef `json:"category,omitempty"`
}
