package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
	}
	PostgresDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
		SSLMode  string
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App            App
		PaymentGateway PaymentGateway
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
		PaymentDueWindowInHours   int
		ReaperCronSpec            string
		ReaperLockTTLInSeconds    int
		BookingLockTTLInSeconds   int
	}

	PaymentGateway struct {
		BaseUrl              string
		SecretKey            string
		WebhookSecret        string
		TimeoutInSeconds     int
		MaxRequestsPerSecond int
	}
)
