package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"vogue/internal/config"
	"vogue/internal/database"
	"vogue/internal/handlers"
	"vogue/internal/repositories"
	"vogue/internal/services"
	"vogue/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories bundles one store's repository implementations.
type Repositories struct {
	Products repositories.ProductRepository
	Offers   repositories.OfferRepository
	Reviews  repositories.ReviewRepository
	Visits   repositories.VisitRepository
}

// NewGORMRepositories returns the repositories backed by a SQL database.
func NewGORMRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Products: repositories.NewGORMProductRepository(db),
		Offers:   repositories.NewGORMOfferRepository(db),
		Reviews:  repositories.NewGORMReviewRepository(db),
		Visits:   repositories.NewGORMVisitRepository(db),
	}
}

// NewMongoRepositories returns the repositories backed by MongoDB.
func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Products: repositories.NewMongoProductRepository(db),
		Offers:   repositories.NewMongoOfferRepository(db),
		Reviews:  repositories.NewMongoReviewRepository(db),
		Visits:   repositories.NewMongoVisitRepository(db),
	}
}

// NewServer initializes the visit counter and builds the Fiber app serving
// the catalog API under /api. publisher may be nil.
func NewServer(ctx context.Context, repos Repositories, publisher services.EventPublisher) (*fiber.App, error) {
	productService := services.NewProductService(repos.Products, publisher)
	offerService := services.NewOfferService(repos.Offers, publisher)
	reviewService := services.NewReviewService(repos.Reviews, publisher)
	visitService := services.NewVisitService(repos.Visits)

	if err := visitService.Init(ctx); err != nil {
		return nil, err
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	handlers.NewOfferHandler(offerService).RegisterRoutes(api)
	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api)
	handlers.NewVisitHandler(visitService).RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

// App is the running catalog service with the connections it owns.
type App struct {
	*fiber.App
	closers []func() error
}

// New connects to the configured store and event broker and builds the
// service.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	repos, err := a.openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Exchange: cfg.RabbitMQ.Exchange})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, mqClient.Close)
		publisher = mqClient
	} else {
		log.Println("RabbitMQ URL is not set. Catalog events are disabled.")
	}

	server, err := NewServer(ctx, repos, publisher)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.App = server
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.StoreConfig) (Repositories, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.URI)
		if err != nil {
			return Repositories{}, err
		}
		a.closers = append(a.closers, func() error {
			return client.Disconnect(context.Background())
		})
		return NewMongoRepositories(client.Database(cfg.Database)), nil

	case config.DriverPostgres, config.DriverSQLite:
		open := database.OpenPostgres
		if cfg.Driver == config.DriverSQLite {
			open = database.OpenSQLite
		}
		db, err := open(cfg.DSN)
		if err != nil {
			return Repositories{}, err
		}
		a.closers = append(a.closers, func() error {
			return database.CloseGORM(db)
		})
		return NewGORMRepositories(db), nil
	}
	return Repositories{}, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// Close releases the store and broker connections in reverse order of
// opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}
	a.closers = nil
}
