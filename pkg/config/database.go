package config

import (
	"fmt"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DSN builds the connection string for the configured driver.
// Postgres is the production driver; sqlite backs local development
// and the goalgridctl tooling.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return "goalgrid.db"
		}
		return d.Path
	default:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.Timezone)
	}
}

func (d DatabaseConfig) IsSQLite() bool {
	return d.Driver == DriverSQLite
}
