package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type txContextKey string

const txKey txContextKey = "trx"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB wraps read and write gorm handles. With the default single-file
// sqlite deployment both point at the same database; a postgres deployment
// may split them across replicas.
type DB struct {
	read  *gorm.DB
	write *gorm.DB
}

func Create(config Config, withDebug bool) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	if withDebug {
		db = db.Debug()
	}
	return db, nil
}

func CreateReadWrite(readConfig Config, writeConfig Config, withDebug bool) (*DB, error) {
	write, err := Create(writeConfig, withDebug)
	if err != nil {
		return nil, err
	}
	read := write
	if readConfig != writeConfig {
		read, err = Create(readConfig, withDebug)
		if err != nil {
			return nil, err
		}
	}
	return &DB{read, write}, nil
}

func (r *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.write.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, txKey, tx)
		return fn(ctx)
	})
}

func (r *DB) Write(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.write.WithContext(ctx)
}

func (r *DB) Read(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.read.WithContext(ctx)
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverSQLite, "":
		return sqlite.Open(c.Path), nil
	case DriverPostgres:
		return postgres.Open(c.postgresDSN()), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", c.Driver)
}
