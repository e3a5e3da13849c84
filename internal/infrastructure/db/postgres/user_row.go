package postgres

import "time"

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CurrentToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
