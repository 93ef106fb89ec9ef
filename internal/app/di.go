package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"

	tgclient "github.com/you-humble/frio-catalog/internal/client/http/telegram"
	"github.com/you-humble/frio-catalog/internal/config"
	converter "github.com/you-humble/frio-catalog/internal/converter/kafka"
	"github.com/you-humble/frio-catalog/internal/model"
	adminrepo "github.com/you-humble/frio-catalog/internal/repository/admin"
	bannerrepo "github.com/you-humble/frio-catalog/internal/repository/banner"
	categoryrepo "github.com/you-humble/frio-catalog/internal/repository/category"
	"github.com/you-humble/frio-catalog/internal/repository/mongodb"
	orderrepo "github.com/you-humble/frio-catalog/internal/repository/order"
	productrepo "github.com/you-humble/frio-catalog/internal/repository/product"
	settingsrepo "github.com/you-humble/frio-catalog/internal/repository/settings"
	authsvc "github.com/you-humble/frio-catalog/internal/service/auth"
	bannersvc "github.com/you-humble/frio-catalog/internal/service/banner"
	categorysvc "github.com/you-humble/frio-catalog/internal/service/category"
	ordconsumer "github.com/you-humble/frio-catalog/internal/service/consumer/order"
	dashboardsvc "github.com/you-humble/frio-catalog/internal/service/dashboard"
	kitsvc "github.com/you-humble/frio-catalog/internal/service/kit"
	ordersvc "github.com/you-humble/frio-catalog/internal/service/order"
	ordproducer "github.com/you-humble/frio-catalog/internal/service/producer/order"
	productsvc "github.com/you-humble/frio-catalog/internal/service/product"
	settingssvc "github.com/you-humble/frio-catalog/internal/service/settings"
	tgservice "github.com/you-humble/frio-catalog/internal/service/telegram"
	thttp "github.com/you-humble/frio-catalog/internal/transport/http/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/transport/http/middleware"
	"github.com/you-humble/frio-catalog/migrations"
	"github.com/you-humble/frio-catalog/platform/closer"
	"github.com/you-humble/frio-catalog/platform/db/migrator"
	"github.com/you-humble/frio-catalog/platform/kafka"
	"github.com/you-humble/frio-catalog/platform/kafka/consumer"
	kafkamw "github.com/you-humble/frio-catalog/platform/kafka/middleware"
	"github.com/you-humble/frio-catalog/platform/kafka/producer"
	"github.com/you-humble/frio-catalog/platform/logger"
)

const (
	settingsCollection   = "settings"
	productsCollection   = "products"
	categoriesCollection = "categories"
	bannersCollection    = "banners"
	adminsCollection     = "admins"
)

type Converter interface {
	OrderCreatedToPayload(e model.OrderCreated) ([]byte, error)
	OrderCreatedToModel(data []byte) (model.OrderCreated, error)
}

type OrderConsumer interface {
	RunOrderCreatedConsume(ctx context.Context) error
}

type CatalogHandler interface {
	Mount(r chi.Router, admin func(http.Handler) http.Handler)
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

type SettingsRepository interface {
	settingssvc.SettingsRepository
	kitsvc.KitStore
}

type ProductRepository interface {
	productsvc.ProductRepository
	settingssvc.ProductRepricer
	kitsvc.ProductFinder
	ordersvc.ProductReader
	dashboardsvc.ProductCounter
	productrepo.BatchCreator
	indexer
}

type CategoryRepository interface {
	categorysvc.CategoryRepository
	indexer
}

type BannerRepository interface {
	bannersvc.BannerRepository
	indexer
}

type AdminRepository interface {
	authsvc.AdminRepository
	indexer
}

type OrderRepository interface {
	ordersvc.OrderRepository
	dashboardsvc.OrderCounter
}

type SettingsService interface {
	thttp.SettingsService
	ExchangeRate(ctx context.Context) (float64, error)
}

type AuthService interface {
	thttp.AuthService
	middleware.TokenParser
	Bootstrap(ctx context.Context, creds model.Credentials) error
}

type di struct {
	mongoClient *mongo.Client
	transactor  settingssvc.Transactor

	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	settingsRepository SettingsRepository
	productRepository  ProductRepository
	categoryRepository CategoryRepository
	bannerRepository   BannerRepository
	adminRepository    AdminRepository
	orderRepository    OrderRepository

	conv Converter

	syncProducer        sarama.SyncProducer
	orderCreatedSender  kafka.Producer
	orderProducer       ordersvc.OrderProducer
	consumerGroup       sarama.ConsumerGroup
	orderCreatedReader  kafka.Consumer
	orderConsumer       OrderConsumer
	telegramBot         *bot.Bot
	orderCreatedHandler ordconsumer.OrderCreatedNotifier

	settingsService  SettingsService
	productService   thttp.ProductService
	kitService       thttp.KitService
	orderService     thttp.OrderService
	categoryService  thttp.CategoryService
	bannerService    thttp.BannerService
	dashboardService thttp.DashboardService
	authService      AuthService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoClient(ctx context.Context) *mongo.Client {
	if d.mongoClient == nil {
		client, err := mongodb.Connect(ctx, config.C().Mongo.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongo: %v\n", err))
		}

		closer.AddNamed("Mongo client", func(ctx context.Context) error {
			return client.Disconnect(ctx)
		})

		d.mongoClient = client
	}

	return d.mongoClient
}

func (d *di) MongoDatabase(ctx context.Context) *mongo.Database {
	return d.MongoClient(ctx).Database(config.C().Mongo.DatabaseName())
}

func (d *di) Transactor(ctx context.Context) settingssvc.Transactor {
	if d.transactor == nil {
		d.transactor = mongodb.NewTransactor(d.MongoClient(ctx), config.C().Mongo.TransactionsEnabled())
	}

	return d.transactor
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		db := stdlib.OpenDBFromPool(d.DBPool(ctx))
		d.migrator = migrator.NewMigrator(db, migrations.FS, ".")

		closer.AddNamed("Migrator", func(ctx context.Context) error {
			return db.Close()
		})
	}

	return d.migrator
}

func (d *di) SettingsRepository(ctx context.Context) SettingsRepository {
	if d.settingsRepository == nil {
		d.settingsRepository = settingsrepo.NewSettingsRepository(
			d.MongoDatabase(ctx).Collection(settingsCollection),
		)
	}

	return d.settingsRepository
}

func (d *di) ProductRepository(ctx context.Context) ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository(
			d.MongoDatabase(ctx).Collection(productsCollection),
		)
	}

	return d.productRepository
}

func (d *di) CategoryRepository(ctx context.Context) CategoryRepository {
	if d.categoryRepository == nil {
		d.categoryRepository = categoryrepo.NewCategoryRepository(
			d.MongoDatabase(ctx).Collection(categoriesCollection),
		)
	}

	return d.categoryRepository
}

func (d *di) BannerRepository(ctx context.Context) BannerRepository {
	if d.bannerRepository == nil {
		d.bannerRepository = bannerrepo.NewBannerRepository(
			d.MongoDatabase(ctx).Collection(bannersCollection),
		)
	}

	return d.bannerRepository
}

func (d *di) AdminRepository(ctx context.Context) AdminRepository {
	if d.adminRepository == nil {
		d.adminRepository = adminrepo.NewAdminRepository(
			d.MongoDatabase(ctx).Collection(adminsCollection),
		)
	}

	return d.adminRepository
}

func (d *di) OrderRepository(ctx context.Context) OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = orderrepo.NewOrderRepository(d.DBPool(ctx))
	}

	return d.orderRepository
}

// Indexers lists every Mongo repository that owns indexes.
func (d *di) Indexers(ctx context.Context) map[string]indexer {
	return map[string]indexer{
		productsCollection:   d.ProductRepository(ctx),
		categoriesCollection: d.CategoryRepository(ctx),
		bannersCollection:    d.BannerRepository(ctx),
		adminsCollection:     d.AdminRepository(ctx),
	}
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.OrderCreatedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) OrderCreatedSender(ctx context.Context) kafka.Producer {
	if d.orderCreatedSender == nil {
		d.orderCreatedSender = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.OrderCreatedTopic(),
			logger.L(),
		)
	}

	return d.orderCreatedSender
}

// OrderProducer publishes order.created events, or drops them when
// notifications are disabled.
func (d *di) OrderProducer(ctx context.Context) ordersvc.OrderProducer {
	if d.orderProducer == nil {
		if !config.C().Notifications.Enabled() {
			d.orderProducer = ordproducer.NewNoopOrderProducer()
			return d.orderProducer
		}

		d.orderProducer = ordproducer.NewOrderProducer(
			d.OrderCreatedSender(ctx),
			d.KafkaConverter(ctx),
			converter.OrderCreatedEventType,
		)
	}

	return d.orderProducer
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.OrderCreatedConsumerGroupID(),
			cfg.Kafka.OrderCreatedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) OrderCreatedReader(ctx context.Context) kafka.Consumer {
	if d.orderCreatedReader == nil {
		d.orderCreatedReader = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.OrderCreatedTopic(),
			},
			logger.L(),
			kafkamw.Recovery(logger.L()),
			kafkamw.Logging(logger.L()),
		)
	}

	return d.orderCreatedReader
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.telegramBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}
		closer.AddNamed("Telegram Bot", func(ctx context.Context) error {
			_, err := b.Close(ctx)
			return err
		})

		d.telegramBot = b
	}

	return d.telegramBot
}

func (d *di) OrderCreatedNotifier(ctx context.Context) ordconsumer.OrderCreatedNotifier {
	if d.orderCreatedHandler == nil {
		d.orderCreatedHandler = tgservice.NewTgService(
			tgclient.NewClient(d.TelegramBot(ctx)),
			config.C().Telegram.ChatID(),
		)
	}

	return d.orderCreatedHandler
}

func (d *di) OrderConsumer(ctx context.Context) OrderConsumer {
	if d.orderConsumer == nil {
		d.orderConsumer = ordconsumer.NewOrderConsumer(
			d.OrderCreatedReader(ctx),
			d.KafkaConverter(ctx),
			d.OrderCreatedNotifier(ctx),
		)
	}

	return d.orderConsumer
}

func (d *di) SettingsService(ctx context.Context) SettingsService {
	if d.settingsService == nil {
		d.settingsService = settingssvc.NewSettingsService(
			d.SettingsRepository(ctx),
			d.ProductRepository(ctx),
			d.Transactor(ctx),
			settingssvc.DefaultRetryPolicy,
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.settingsService
}

func (d *di) ProductService(ctx context.Context) thttp.ProductService {
	if d.productService == nil {
		d.productService = productsvc.NewProductService(
			d.ProductRepository(ctx),
			d.SettingsService(ctx),
			d.CategoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.productService
}

func (d *di) KitService(ctx context.Context) thttp.KitService {
	if d.kitService == nil {
		d.kitService = kitsvc.NewKitService(
			d.SettingsService(ctx),
			d.SettingsRepository(ctx),
			d.ProductRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.kitService
}

func (d *di) OrderService(ctx context.Context) thttp.OrderService {
	if d.orderService == nil {
		d.orderService = ordersvc.NewOrderService(
			d.OrderRepository(ctx),
			d.ProductRepository(ctx),
			d.SettingsService(ctx),
			d.OrderProducer(ctx),
			config.C().Store.WhatsAppPhone(),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) CategoryService(ctx context.Context) thttp.CategoryService {
	if d.categoryService == nil {
		d.categoryService = categorysvc.NewCategoryService(
			d.CategoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.categoryService
}

func (d *di) BannerService(ctx context.Context) thttp.BannerService {
	if d.bannerService == nil {
		d.bannerService = bannersvc.NewBannerService(
			d.BannerRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.bannerService
}

func (d *di) DashboardService(ctx context.Context) thttp.DashboardService {
	if d.dashboardService == nil {
		d.dashboardService = dashboardsvc.NewDashboardService(
			d.ProductRepository(ctx),
			d.SettingsService(ctx),
			d.OrderRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.dashboardService
}

func (d *di) AuthService(ctx context.Context) AuthService {
	if d.authService == nil {
		d.authService = authsvc.NewAuthService(
			d.AdminRepository(ctx),
			config.C().Auth.JWTSecret(),
			config.C().Auth.JWTTTL(),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.authService
}

func (d *di) CatalogHandler(ctx context.Context) CatalogHandler {
	return thttp.NewCatalogHandler(thttp.Services{
		Auth:       d.AuthService(ctx),
		Settings:   d.SettingsService(ctx),
		Kit:        d.KitService(ctx),
		Products:   d.ProductService(ctx),
		Orders:     d.OrderService(ctx),
		Categories: d.CategoryService(ctx),
		Banners:    d.BannerService(ctx),
		Dashboard:  d.DashboardService(ctx),
	})
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
