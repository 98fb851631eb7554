package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUsecases "github.com/ledgerline/ledgerline/internal/application/billing/usecases"
	ledgerUsecases "github.com/ledgerline/ledgerline/internal/application/ledger/usecases"
	subscriptionUsecases "github.com/ledgerline/ledgerline/internal/application/subscription/usecases"
	tenantApp "github.com/ledgerline/ledgerline/internal/application/tenant"
	"github.com/ledgerline/ledgerline/internal/infrastructure/auth"
	"github.com/ledgerline/ledgerline/internal/infrastructure/cache"
	"github.com/ledgerline/ledgerline/internal/infrastructure/checkout"
	"github.com/ledgerline/ledgerline/internal/infrastructure/config"
	"github.com/ledgerline/ledgerline/internal/infrastructure/repository"
	"github.com/ledgerline/ledgerline/internal/interfaces/http/handlers"
	"github.com/ledgerline/ledgerline/internal/interfaces/http/middleware"
	"github.com/ledgerline/ledgerline/internal/interfaces/http/routes"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	webhookHandler      *handlers.WebhookHandler
	subscriptionHandler *handlers.SubscriptionHandler
	metricsHandler      *handlers.MetricsHandler
	authMiddleware      *middleware.AuthMiddleware
	log                 logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies. redisClient
// may be nil, which disables the metrics cache and its invalidation.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	directoryRepo := repository.NewTenantDirectoryRepository(db, log)
	transactionRepo := repository.NewTransactionRepository(db, log)
	salesConfigRepo := repository.NewSalesConfigRepository(db, log)

	resolver := tenantApp.NewResolver(directoryRepo, log)
	hostedCheckout := checkout.NewHostedCheckout(cfg.Billing.CheckoutLinks, log)

	processWebhookUC := billingUsecases.NewProcessWebhookUseCase(subscriptionRepo, resolver, cfg.Billing.PeriodDays, log)
	getSubscriptionUC := subscriptionUsecases.NewGetSubscriptionUseCase(subscriptionRepo)
	updatePlanUC := subscriptionUsecases.NewUpdatePlanUseCase(subscriptionRepo, hostedCheckout, log)
	cancelSubscriptionUC := subscriptionUsecases.NewCancelSubscriptionUseCase(subscriptionRepo, hostedCheckout, log)
	getSalesMetricsUC := ledgerUsecases.NewGetSalesMetricsUseCase(transactionRepo, salesConfigRepo, log)
	getFinancialGoalUC := ledgerUsecases.NewGetFinancialGoalUseCase(transactionRepo, salesConfigRepo, log)

	if redisClient != nil {
		ttl := time.Duration(cfg.Metrics.CacheTTLMinutes) * time.Minute
		metricsCache := cache.NewRedisSalesMetricsCache(redisClient, ttl, log)
		getSalesMetricsUC.SetCache(metricsCache)
		processWebhookUC.SetMetricsInvalidator(metricsCache)
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		webhookHandler:      handlers.NewWebhookHandler(processWebhookUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(getSubscriptionUC, updatePlanUC, cancelSubscriptionUC, log),
		metricsHandler:      handlers.NewMetricsHandler(getSalesMetricsUC, getFinancialGoalUC, log),
		authMiddleware:      authMiddleware,
		log:                 log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupWebhookRoutes(r.engine, &routes.WebhookRouteConfig{
		WebhookHandler: r.webhookHandler,
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupMetricsRoutes(r.engine, &routes.MetricsRouteConfig{
		MetricsHandler: r.metricsHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
