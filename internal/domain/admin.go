package domain

import "time"

// AdminUser marks an account allowed to operate the pickup desk: scanning
// order tokens and confirming handoffs.
type AdminUser struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
