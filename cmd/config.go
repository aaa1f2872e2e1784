package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AllowNegativeStock keeps the inventory-tracking-only policy: order
	// creation may drive stock below zero. Set false to reject such orders.
	AllowNegativeStock bool

	// StaleOrderTTL is how long an order may sit in CREATED before the
	// background sweep cancels it. Zero disables the sweep.
	StaleOrderTTL time.Duration
}
