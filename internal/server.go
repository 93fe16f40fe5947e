package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vstanisic/fitpal/internal/auth"
	"github.com/vstanisic/fitpal/internal/config"
	"github.com/vstanisic/fitpal/internal/db"
	"github.com/vstanisic/fitpal/internal/middleware"
	"github.com/vstanisic/fitpal/internal/misc"
	"github.com/vstanisic/fitpal/internal/music"
	"github.com/vstanisic/fitpal/internal/progress"
	"github.com/vstanisic/fitpal/internal/quotes"
	"github.com/vstanisic/fitpal/internal/schedule"
	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/telemetry/metrics"
	metricsmiddleware "github.com/vstanisic/fitpal/internal/telemetry/metrics/middleware"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/internal/water"
	"github.com/vstanisic/fitpal/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used by the workout tracking mobile app
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	appStore    store.Store
	quotesApi   *quotes.Api
	catalog     *workouts.Catalog
	resolver    *schedule.Resolver
	progress    *progress.Tracker
	water       *water.Tracker
	musicLinks  *music.Handler

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitpal_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitpal", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitpal-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	appStore := store.NewPostgresStore(dbPool)
	if err := appStore.CreateSchema(ctx); err != nil {
		return nil, fmt.Errorf("create store schema: %w", err)
	}

	waterTracker := water.NewTracker(appStore, metricsManager)
	go waterTracker.RunRolloverChecks(
		ctx,
		time.Duration(params.Config.WaterRolloverCheckIntervalSeconds)*time.Second,
	)

	s := &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		appStore:   appStore,
		quotesApi:  quotes.NewApi(params.Config.QuotesAPIURL, tracedHttpClient),
		catalog:    workouts.NewCatalog(appStore),
		resolver:   schedule.NewResolver(appStore),
		progress:   progress.NewTracker(appStore, metricsManager),
		water:      waterTracker,
		musicLinks: music.NewHandler(),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	now := time.Now

	workoutsHandler := workouts.NewHandler(s.catalog)
	r.HandleFunc("/workouts/program", workoutsHandler.HandleGetProgram).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/workouts/program", workoutsHandler.HandleSaveProgram).Methods("PUT", "OPTIONS").Name("save-program")
	r.HandleFunc("/workouts/program/reset", workoutsHandler.HandleResetProgram).Methods("POST", "OPTIONS").Name("reset-program")
	r.HandleFunc("/workouts/program/day/{dayId}/exercise", workoutsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workouts/program/day/{dayId}/exercise", workoutsHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/workouts/program/day/{dayId}/exercise/{id}", workoutsHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/workouts/guide/{name}", workoutsHandler.HandleGetGuide).Methods("GET", "OPTIONS").Name("get-guide")

	scheduleHandler := schedule.NewHandler(s.resolver, s.catalog, now)
	r.HandleFunc("/schedule/display", scheduleHandler.HandleGetDisplaySchedule).Methods("GET", "OPTIONS").Name("display-schedule")
	r.HandleFunc("/schedule/week", scheduleHandler.HandleGetWeek).Methods("GET", "OPTIONS").Name("week-schedule")
	r.HandleFunc("/schedule/day/{weekday}", scheduleHandler.HandleSetDay).Methods("PUT", "OPTIONS").Name("set-schedule-day")
	r.HandleFunc("/schedule/reset", scheduleHandler.HandleReset).Methods("POST", "OPTIONS").Name("reset-schedule")

	progressHandler := progress.NewHandler(s.progress, now)
	r.HandleFunc("/progress/day/{dayId}/exercise/{exerciseId}/toggle", progressHandler.HandleToggleExercise).Methods("POST", "OPTIONS").Name("toggle-exercise")
	r.HandleFunc("/progress/day/{dayId}/today", progressHandler.HandleTodayCompleted).Methods("GET", "OPTIONS").Name("today-completed")
	r.HandleFunc("/progress/day/{dayId}/reset", progressHandler.HandleResetDay).Methods("POST", "OPTIONS").Name("reset-day-progress")
	r.HandleFunc("/progress/stats/weekly", progressHandler.HandleWeeklyStats).Methods("GET", "OPTIONS").Name("weekly-stats")
	r.HandleFunc("/progress/streak", progressHandler.HandleStreak).Methods("GET", "OPTIONS").Name("streak")
	r.HandleFunc("/progress/chart/weekly", progressHandler.HandleWeeklyChart).Methods("GET", "OPTIONS").Name("weekly-chart")

	waterHandler := water.NewHandler(s.water, now)
	r.HandleFunc("/water/today", waterHandler.HandleToday).Methods("GET", "OPTIONS").Name("water-today")
	r.HandleFunc("/water/glass", waterHandler.HandleAddGlass).Methods("POST", "OPTIONS").Name("water-add-glass")
	r.HandleFunc("/water/glass", waterHandler.HandleRemoveGlass).Methods("DELETE", "OPTIONS").Name("water-remove-glass")
	r.HandleFunc("/water/goal", waterHandler.HandleSetGoal).Methods("PUT", "OPTIONS").Name("water-set-goal")

	quotesHandler := quotes.NewHandler(s.quotesApi, s.metricsManager)
	r.HandleFunc("/quote/of-the-day", quotesHandler.HandleQuoteOfTheDay).Methods("GET", "OPTIONS").Name("quote-of-the-day")

	r.HandleFunc("/music/link", s.musicLinks.HandleGetLink).Methods("GET", "OPTIONS").Name("music-link")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, now)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
