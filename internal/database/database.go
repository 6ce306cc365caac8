package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"vogue/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 10 * time.Second

// OpenPostgres opens a PostgreSQL database and migrates the catalog tables.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return openGORM(postgres.Open(dsn), 0)
}

// OpenSQLite opens a SQLite database and migrates the catalog tables.
// SQLite allows a single writer, so the pool is limited to one connection
// and concurrent requests queue instead of failing with SQLITE_BUSY. This
// also keeps ":memory:" databases on one connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openGORM(sqlite.Open(path), 1)
}

// openGORM opens the database, applies maxOpenConns when positive and
// migrates the catalog tables.
func openGORM(dialector gorm.Dialector, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}

	err = db.AutoMigrate(&models.Product{}, &models.Offer{}, &models.Review{}, &models.Visit{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return db, nil
}

// CloseGORM closes the connection pool behind db.
func CloseGORM(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}
