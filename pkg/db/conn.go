package db

import (
	"database/sql"
	"fmt"
)

type Config struct {
	Driver   string
	Path     string // sqlite database file
	User     string
	Host     string
	Port     string
	Password string
	Database string
}

func (c Config) postgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Database, c.Port)
}

// newSqlConnection opens a plain database/sql handle for goose; gorm keeps
// its own connection.
func newSqlConnection(config Config) (*sql.DB, error) {
	switch config.Driver {
	case DriverSQLite, "":
		return sql.Open("sqlite3", config.Path)
	case DriverPostgres:
		return sql.Open("postgres", config.postgresDSN())
	}
	return nil, fmt.Errorf("unsupported db driver %q", config.Driver)
}
