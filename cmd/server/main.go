package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mosefak-service/cmd/migration"
	"mosefak-service/internal/app/config"
	"mosefak-service/internal/app/delivery/http/controllers"
	"mosefak-service/internal/app/delivery/http/middlewares"
	"mosefak-service/internal/app/delivery/http/routers"
	"mosefak-service/internal/app/drivers/database"
	"mosefak-service/internal/app/drivers/logger"
	"mosefak-service/internal/app/drivers/messaging"
	"mosefak-service/internal/app/services/core/appointments"
	"mosefak-service/internal/app/services/core/doctors"
	"mosefak-service/internal/app/services/core/notifications"
	"mosefak-service/internal/app/services/core/payments"
	"mosefak-service/internal/app/services/shared/locker"
	"mosefak-service/internal/app/services/shared/payment_gateway"
	sharedRedis "mosefak-service/internal/app/services/shared/redis"
	"mosefak-service/internal/app/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	if err := migration.Run(postgresDB); err != nil {
		log.Fatalf("Error running database migrations: %v", err)
	}

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(&bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Storage
	txRunner := storage.NewTxRunner(bootstrap.PostgresDB)

	// Payment gateway
	gatewayService := payment_gateway.NewGatewayService(bootstrap.InternalConfig, bootstrap.Logger)

	// Notification
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB)
	notificationService, err := notifications.NewNotificationService(bootstrap.RabbitMQ, notificationMongoRepository, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Doctor
	doctorRepository := doctors.NewDoctorPostgresRepository(bootstrap.PostgresDB)
	appointmentTypeRepository := doctors.NewAppointmentTypePostgresRepository(bootstrap.PostgresDB)

	// Payment
	paymentRepository := payments.NewPaymentPostgresRepository(bootstrap.PostgresDB)

	// Appointment
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		appointmentTypeRepository,
		paymentRepository,
		gatewayService,
		notificationService,
		lockService,
		txRunner,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		appointmentRepository,
		appointmentTypeRepository,
		doctorRepository,
		gatewayService,
		notificationService,
		txRunner,
		bootstrap.Logger,
	)

	// Reaper worker
	worker := appointments.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, appointmentUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Delivery
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, paymentUsecase, gatewayService)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, webhookController)

	return nil
}
