package services

import (
	"context"
	"errors"

	"cafe-telegram/db"
	"github.com/jackc/pgx/v5"
)

// TouchCustomer records the customer on first contact and refreshes last_seen_at after that.
func TouchCustomer(ctx context.Context, tgUserID int64, username string) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO customers (tg_user_id, username, first_seen_at, last_seen_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (tg_user_id) DO UPDATE SET username = EXCLUDED.username, last_seen_at = now()`,
		tgUserID, username,
	)
	return err
}

// GetCustomerUsername returns the stored username. Empty string and false if unknown.
func GetCustomerUsername(ctx context.Context, tgUserID int64) (username string, ok bool) {
	err := db.Pool.QueryRow(ctx, `SELECT username FROM customers WHERE tg_user_id = $1`, tgUserID).Scan(&username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false
		}
		return "", false
	}
	return username, true
}
