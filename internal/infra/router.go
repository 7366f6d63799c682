package infra

import (
	"net/http"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/go-redis/redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"leadassign/internal/auth"
	"leadassign/internal/cache"
	"leadassign/internal/config"
	"leadassign/internal/handlers"
	"leadassign/internal/middleware"
	"leadassign/internal/repository"
	"leadassign/internal/service"
	"leadassign/internal/validation"
	"leadassign/pkg/db/transactor"
)

const uploadBodyLimit = "10M"

func Router(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()

	v := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
		return nil, err
	}
	e.Validator = validation.Echo(v, translator)

	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(e)

	// Transactors
	trx := transactor.NewPgxTransactor(pgPool)
	trxExec := transactor.NewPgxWithinTransactionExecutor(pgPool)

	// Extra functionality
	jwtCfg := cfg.JwtCfg
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Repositories
	adminRepo := repository.NewPostgresAdminRepository(trxExec)
	agentRepo := repository.NewMongoAgentRepository(mongoClient, cfg.MongoCfg.Database)
	distributionRepo := repository.NewMongoDistributionRepository(mongoClient, cfg.MongoCfg.Database)

	// Caches
	distributionCache := cache.NewRedisDistributionCache(redisClient)

	// Services
	storeTimeout := cfg.UploadCfg.StoreTimeout
	authSvc := service.NewAuthService(adminRepo, trx, jwtIssuer)
	agentSvc := service.NewAgentService(agentRepo, storeTimeout)
	uploadSvc := service.NewUploadService(agentRepo, distributionRepo, cfg.UploadCfg.MaxFileSize, storeTimeout)
	distributionSvc := service.NewDistributionService(distributionRepo, distributionCache, agentRepo, adminRepo, storeTimeout)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	agentHandler := handlers.NewAgentHTTPHandler(agentSvc)
	uploadHandler := handlers.NewUploadHTTPHandler(uploadSvc, cfg.UploadCfg.MaxFileSize)
	distributionHandler := handlers.NewDistributionHTTPHandler(distributionSvc)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "timestamp": time.Now().UTC()})
	})

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)

	// agents
	agentsAPI := api.Group("/agents", authorizeMw)
	agentsAPI.GET("", agentHandler.GetAll)
	agentsAPI.GET("/:id", agentHandler.Get)
	agentsAPI.POST("", agentHandler.Post)
	agentsAPI.PUT("/:id", agentHandler.Put)
	agentsAPI.DELETE("/:id", agentHandler.DeleteByID)

	// upload
	uploadAPI := api.Group("/upload", authorizeMw, echomiddleware.BodyLimit(uploadBodyLimit))
	uploadAPI.POST("/customers", uploadHandler.Upload)
	uploadAPI.GET("/distribution", agentHandler.Assignments)

	// distributions
	distributionsAPI := api.Group("/distributions", authorizeMw)
	distributionsAPI.GET("", distributionHandler.List)
	distributionsAPI.GET("/:id", distributionHandler.Get)

	return e, nil
}
