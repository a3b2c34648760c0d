package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zkproofport/proofport-app-demo/internal/app/bridge"
	"github.com/zkproofport/proofport-app-demo/internal/app/callback"
	"github.com/zkproofport/proofport-app-demo/internal/app/docs"
	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/internal/app/link"
	"github.com/zkproofport/proofport-app-demo/internal/app/middleware"
	"github.com/zkproofport/proofport-app-demo/internal/app/proxy"
	"github.com/zkproofport/proofport-app-demo/internal/app/results"
	"github.com/zkproofport/proofport-app-demo/internal/app/status"
	"github.com/zkproofport/proofport-app-demo/pkg/appbuilder"
	"github.com/zkproofport/proofport-app-demo/pkg/logger"
	"github.com/zkproofport/proofport-app-demo/pkg/rabbitmq"
	"github.com/zkproofport/proofport-app-demo/pkg/rest"
)

// @title           ProofPort Demo Server
// @version         1.0
// @description     Backend for the ProofPort SDK demo pages: callback ingress, result cache, SSE fan-out and upstream proxies
// @BasePath /
func main() {

	var (
		broadcaster     *events.Broadcaster
		callbackService *callback.Service

		callbackHandler *callback.Handler
		eventsHandler   *events.Handler
		resultsHandler  *results.Handler
		statusHandler   *status.Handler
		linkHandler     *link.Handler
		apiForwarder    *proxy.Forwarder
		relayForwarder  *proxy.Forwarder
	)

	appbuilder.New[ServerConfigJson, ServerConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{{Key: "service", Value: "proofport-demo"}},
		}).
		ResolveEnvironment().
		LoadConfig("config.json").
		WithOption(func(a *appbuilder.AppBuilder[ServerConfigJson, ServerConfig]) {
			cfg := a.Config
			docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.GetRestApiPort())

			// ----- RESULT STORE -----
			var store results.Store
			if cfg.ResultsConf.Backend == "redis" {
				a.Logger.Infof("Using redis result store at %s", cfg.ResultsConf.RedisAddr)
				store = results.NewRedisStore(cfg.ResultsConf.RedisAddr, cfg.ResultsConf.TTL)
			} else {
				memStore := results.NewInMemoryStore(
					results.WithTTL(cfg.ResultsConf.TTL),
					results.WithMaxEntries(cfg.ResultsConf.MaxEntries),
				)
				a.AddWorkerServices(results.NewSweepWorker(memStore, cfg.ResultsConf.SweepInterval))
				store = memStore
			}

			// ----- SSE BROADCAST + CALLBACK INGRESS -----
			broadcaster = events.NewBroadcaster()
			callbackService = callback.NewService(store, broadcaster,
				func(s *callback.Service) {
					s.Secret = cfg.CallbackConf.Secret
				},
			)

			callbackHandler = callback.NewHandler(callbackService)
			eventsHandler = events.NewHandler(broadcaster)
			resultsHandler = results.NewHandler(store)
			linkHandler = link.NewHandler()

			// ----- UPSTREAM FORWARDERS -----
			apiForwarder = proxy.NewForwarder("api", cfg.UpstreamConf.ApiURL, "")
			relayForwarder = proxy.NewForwarder("relay", cfg.UpstreamConf.RelayURL, cfg.UpstreamConf.RelayPrefix)

			statusHandler = status.NewHandler(status.Descriptor{
				ApiURL:       cfg.UpstreamConf.ApiURL,
				RelayURL:     cfg.UpstreamConf.RelayURL,
				DashboardURL: cfg.ClientConf.DashboardURL,
				DemoUser:     cfg.ClientConf.DemoUser,
				DemoPassword: cfg.ClientConf.DemoPassword,
			})
		}).

		// ----- RABBITMQ (optional event bridge + log sink) -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *appbuilder.AppBuilder[ServerConfigJson, ServerConfig]) {
			if a.Conn == nil || !a.Config.BridgeConf.Enabled {
				return
			}

			origin := uuid.NewString()
			a.Logger.Infof("Event bridge enabled, instance origin: %s", origin)

			callbackService.Bridge = bridge.NewPublisher(origin)
			a.AddWorkerServices(bridge.NewWorker(broadcaster, origin))

			if logPublisher := rabbitmq.GetPublisher("LogPublisher"); logPublisher != nil {
				logSink := rabbitmq.CreateRabbitmqLoggerSink(logPublisher)
				logger.AddSinkToLoggerInstance(logger.Default(), logSink)
			}
		}).

		// ----- CORS -----
		AddGinMiddleware(
			rest.NewMiddleware("*", middleware.CORSMiddleware()),
		).

		// ----- ROUTES -----
		AddGinRoutes(
			// Callback ingress from the relay server
			rest.NewRoute(rest.POST, "", "callback", callbackHandler.Post),
			rest.NewRoute(rest.GET, "", "callback", callbackHandler.Get),

			// Push and pull delivery of proof results
			rest.NewRoute(rest.GET, "", "events", eventsHandler.Stream),
			rest.NewRoute(rest.GET, "", "results/:request_id", resultsHandler.GetResult),

			// Client-facing descriptor
			rest.NewRoute(rest.GET, "", "config", statusHandler.GetConfig),

			// Deep link / QR helpers
			rest.NewRoute(rest.GET, "link", "qr", linkHandler.QR),
			rest.NewRoute(rest.GET, "link", "deeplink", linkHandler.DeepLink),

			// Pass-through forwarders
			rest.NewRoute(rest.ANY, "proxy", "*path", apiForwarder.Handle),
			rest.NewRoute(rest.ANY, "relay", "*path", relayForwarder.Handle),
		).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}
