package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/external/cadence"
	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/logmodule"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// TaskEnqueuer sends a task to the background workers
type TaskEnqueuer interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DispatchCore
	mongoStore store.MongoStore

	// Geo services
	geocoder   geo.Geocoder
	dispatcher *dispatch.Dispatcher

	// live calls
	sessions *dispatch.Sessions

	defaultOrigin schema.Location

	// job pool enqueuer
	backgroundEnqueuer TaskEnqueuer

	// cadence client, nil if the dispatch worker is not deployed
	cadenceClient cadence.WorkflowClient
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	geocoder geo.Geocoder,
	facilities geo.FacilityFinder,
	routes geo.RouteProvider,
	backgroundEnqueuer TaskEnqueuer,
	cadenceClient cadence.WorkflowClient) *Server {
	dispatchStore := store.NewDispatchStore(ormDB)

	d := dispatch.NewConfiguredDispatcher(dispatchStore, mongoStore, facilities, routes)

	return &Server{
		store:              dispatchStore,
		mongoStore:         mongoStore,
		geocoder:           geocoder,
		dispatcher:         d,
		sessions:           dispatch.NewSessions(),
		defaultOrigin:      DefaultOrigin(),
		backgroundEnqueuer: backgroundEnqueuer,
		cadenceClient:      cadenceClient,
	}
}

// DefaultOrigin is the configured dispatch origin used when an address
// can not be resolved
func DefaultOrigin() schema.Location {
	if viper.IsSet("dispatch.default_origin.latitude") && viper.IsSet("dispatch.default_origin.longitude") {
		return schema.Location{
			Latitude:  viper.GetFloat64("dispatch.default_origin.latitude"),
			Longitude: viper.GetFloat64("dispatch.default_origin.longitude"),
		}
	}
	return geo.DefaultLocation
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	patientRoute := apiRoute.Group("/patients")
	{
		patientRoute.POST("", s.createPatient)
		patientRoute.GET("/:patientID", s.getPatient)
	}

	callRoute := apiRoute.Group("/calls")
	{
		callRoute.POST("", s.startCall)
		callRoute.GET("/:callID", s.getCall)
		callRoute.POST("/:callID/symptoms", s.addCallSymptoms)
		callRoute.POST("/:callID/hospitals", s.rankCallHospitals)
		callRoute.GET("/:callID/hospitals", s.latestCallHospitals)
		callRoute.POST("/:callID/dispatch", s.dispatchAmbulance)
		callRoute.POST("/:callID/end", s.endCall)
	}

	apiRoute.POST("/severity", s.severity)
	apiRoute.POST("/hospitals/nearby", s.nearbyHospitals)

	dispatchRoute := apiRoute.Group("/dispatch")
	{
		dispatchRoute.POST("", s.runDispatch)
		dispatchRoute.POST("/refresh", s.refreshDispatch)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/occupancy", s.metricOccupancy)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version":     "Emergency Dispatch 0.1",
			"hospital_capacity":  s.dispatcher.Capacity,
			"facility_radius":    s.dispatcher.Radius,
			"default_origin":     s.defaultOrigin,
			"refresh_workflow":   s.cadenceClient != nil,
			"background_enabled": s.backgroundEnqueuer != nil,
		},
	})
}

// apikeyAuthentication only lets through requests carrying the api key
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
