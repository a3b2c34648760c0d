package appbuilder

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
	"github.com/zkproofport/proofport-app-demo/pkg/rabbitmq"
	"github.com/zkproofport/proofport-app-demo/pkg/rest"
	"github.com/zkproofport/proofport-app-demo/pkg/utilities"
)

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRabbitmqConfig() rabbitmq.RabbitmqConfig
	GetRestApiPort() uint16
}

type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger *logger.Logger
	Config U
	Conn   *amqp.Connection

	environment    string
	workerServices []WorkerService
	middlewares    []rest.Middleware
	routes         []rest.Route
	engine         *gin.Engine
}

type AppBuilderInterface[T utilities.JsonConfigObj[U], U AppConfig] interface {
	InitLogger(loggerArgs logger.GlobalLoggerConfig) AppBuilderInterface[T, U]
	ResolveEnvironment() AppBuilderInterface[T, U]
	LoadConfig(configPath string) AppBuilderInterface[T, U]
	WithOption(option func(*AppBuilder[T, U])) AppBuilderInterface[T, U]
	InitRabbitmqConnection() AppBuilderInterface[T, U]
	InitRabbitmqRegistries() AppBuilderInterface[T, U]
	AddWorkerServices(workerServices ...WorkerService) AppBuilderInterface[T, U]
	AddGinMiddleware(middlewares ...rest.Middleware) AppBuilderInterface[T, U]
	AddGinRoutes(routes ...rest.Route) AppBuilderInterface[T, U]
	AddSwagger() AppBuilderInterface[T, U]
	InitGinRouter() AppBuilderInterface[T, U]
	Build() ApplicationInterface
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() AppBuilderInterface[T, U] {
	return &AppBuilder[T, U]{}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) AppBuilderInterface[T, U] {
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

// ResolveEnvironment loads a .env file when present and records the active
// environment name (APP_ENV, "development" when unset).
func (a *AppBuilder[T, U]) ResolveEnvironment() AppBuilderInterface[T, U] {
	if err := godotenv.Load(); err == nil {
		a.Logger.Info("Loaded environment overrides from .env")
	}

	a.environment = utilities.EnvOrDefault("APP_ENV", "development")
	a.Logger.Infof("Resolved environment: %s", a.environment)
	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) AppBuilderInterface[T, U] {
	if override := os.Getenv("CONFIG_FILE"); override != "" {
		filePath = override
	}

	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	jsonConfig, err := utilities.ReadConfig[T, U](filePath)
	if err != nil {
		a.Logger.Error(err, "Failed to load config")
		panic(err)
	}

	a.Config = jsonConfig
	a.Logger.Info("Config successfully loaded.")
	return a
}

func (a *AppBuilder[T, U]) WithOption(option func(*AppBuilder[T, U])) AppBuilderInterface[T, U] {
	option(a)
	return a
}

func (a *AppBuilder[T, U]) InitRabbitmqConnection() AppBuilderInterface[T, U] {
	rabbitmqConfig := a.Config.GetRabbitmqConfig()
	if !rabbitmqConfig.Enabled {
		a.Logger.Info("Rabbitmq disabled in config, skipping connection")
		return a
	}

	a.Logger.Info("Preparing to connect to Rabbitmq server...")
	conn, err := rabbitmq.ConnectToRabbitmq(
		rabbitmqConfig.Host,
		rabbitmqConfig.User,
		rabbitmqConfig.Password,
	)
	if err != nil {
		panic(err)
	}

	a.Conn = conn
	a.Logger.Info("Connection with Rabbitmq server established")

	return a
}

func (a *AppBuilder[T, U]) InitRabbitmqRegistries() AppBuilderInterface[T, U] {
	if a.Conn == nil {
		return a
	}

	a.Logger.Info("Initializing Rabbitmq registries from config")
	rabbitmqConf := a.Config.GetRabbitmqConfig()

	rabbitmq.InitializeConsumerRegistry(a.Conn, rabbitmqConf.ConsumersConfig)
	rabbitmq.InitializePublisherRegistry(a.Conn, rabbitmqConf.PublishersConfig)
	a.Logger.Info("Successfully initialized Rabbitmq registries from config")

	return a
}

func (a *AppBuilder[T, U]) AddWorkerServices(workerServices ...WorkerService) AppBuilderInterface[T, U] {
	a.Logger.Info("Adding Worker Services to Application...")
	a.workerServices = append(a.workerServices, workerServices...)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddleware(middlewares ...rest.Middleware) AppBuilderInterface[T, U] {
	a.middlewares = append(a.middlewares, middlewares...)
	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) AppBuilderInterface[T, U] {
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) AddSwagger() AppBuilderInterface[T, U] {
	a.Logger.Info("Adding SwaggerUI...")
	a.routes = append(a.routes, rest.NewRoute(
		rest.GET,
		"swagger",
		"*any",
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	))

	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() AppBuilderInterface[T, U] {
	a.Logger.Info("Initializing Gin Router...")
	router := gin.Default()

	for _, m := range a.middlewares {
		if m.Group == "*" {
			router.Use(m.Handler)
		}
	}

	groups := map[string]*gin.RouterGroup{}
	groupFor := func(name string) *gin.RouterGroup {
		if _, exists := groups[name]; !exists {
			group := router.Group("/" + name)
			for _, m := range a.middlewares {
				if m.Group == name && name != "*" {
					group.Use(m.Handler)
				}
			}
			groups[name] = group
		}
		return groups[name]
	}

	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		group := groupFor(r.Group)

		switch r.Method {
		case rest.GET:
			group.GET(r.Path, r.HandlerFunc)
		case rest.POST:
			group.POST(r.Path, r.HandlerFunc)
		case rest.PUT:
			group.PUT(r.Path, r.HandlerFunc)
		case rest.PATCH:
			group.PATCH(r.Path, r.HandlerFunc)
		case rest.DELETE:
			group.DELETE(r.Path, r.HandlerFunc)
		case rest.OPTIONS:
			group.OPTIONS(r.Path, r.HandlerFunc)
		case rest.ANY:
			group.Any(r.Path, r.HandlerFunc)
		default:
			a.Logger.Warnf("Unrecognized HTTP method: %d", r.Method)
		}
	}

	a.engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Build() ApplicationInterface {
	return &Application{
		Logger:         a.Logger,
		Addr:           fmt.Sprintf("0.0.0.0:%d", a.Config.GetRestApiPort()),
		Conn:           a.Conn,
		WorkerServices: a.workerServices,
		Engine:         a.engine,
	}
}
