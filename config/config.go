package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Database
	DBDriver    string `envconfig:"DB_DRIVER" default:"mysql"` // mysql | postgres | sqlite
	DatabaseURL string `envconfig:"DATABASE_URL"`
	MySQLURL    string `envconfig:"MYSQL_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort      string `envconfig:"DB_PORT" default:"3306"`
	DBUser      string `envconfig:"DB_USER" default:"root"`
	DBPass      string `envconfig:"DB_PASS"`
	DBName      string `envconfig:"DB_NAME" default:"hotel_booking"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"` // silent | error | warn | info

	// Sessions
	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"72h"`
	SecureCookies bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`

	CorsOrigins []string `envconfig:"CORS_ORIGINS"`

	// Booking events; empty URL logs events instead of publishing them
	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`

	// Bootstrap
	AdminUsername  string `envconfig:"ADMIN_USERNAME"`
	AdminEmail     string `envconfig:"ADMIN_EMAIL"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"false"`

	// SMTP; empty host logs mails instead of sending them
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     string `envconfig:"SMTP_PORT"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFromName string `envconfig:"SMTP_FROM_NAME"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
