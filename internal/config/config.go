package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Workflow  WorkflowConfig  `yaml:"workflow"`
	Cooldown  CooldownConfig  `yaml:"cooldown"`
	Mail      MailConfig      `yaml:"mail"`
	Portal    PortalConfig    `yaml:"portal"`
	Jobs      JobsConfig      `yaml:"jobs"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	Environment     string        `yaml:"environment"      env:"SERVER_ENVIRONMENT"      env-default:"production"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// AuthRatePerMinute limits login and refresh calls per client IP; 0 disables it.
	AuthRatePerMinute int `yaml:"auth_rate_per_minute" env:"SERVER_AUTH_RATE_PER_MINUTE" env-default:"20"`
}

// IsProduction reports whether internal error details must be hidden from clients.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// CORSConfig lists the browser origins of the staff front-end.
type CORSConfig struct {
	AllowedOrigins []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
	AllowedMethods []string      `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-separator:"," env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string      `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-separator:"," env-default:"Authorization,Content-Type,X-Request-Id"`
	MaxAge         time.Duration `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"12h"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`

	// StatementTimeout bounds every statement server-side; 0 leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
	// ConnectTimeout is how long NewPool keeps retrying the first ping.
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret"     env:"AUTH_ACCESS_SECRET"     env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret"    env:"AUTH_REFRESH_SECRET"    env-required:"true"`
	Issuer          string        `yaml:"issuer"            env:"AUTH_ISSUER"            env-default:"casedesk"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"168h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"12"`
}

// WorkflowConfig holds case lifecycle settings.
type WorkflowConfig struct {
	StageScheme string        `yaml:"stage_scheme" env:"WORKFLOW_STAGE_SCHEME" env-default:"classic"`
	SoonWindow  time.Duration `yaml:"soon_window"  env:"WORKFLOW_SOON_WINDOW"  env-default:"48h"`
	SLA         SLAConfig     `yaml:"sla"`
}

// SLAConfig is the time from creation to SLA due date per priority.
// A zero value leaves slaDue unset for that priority.
type SLAConfig struct {
	Urgent time.Duration `yaml:"urgent" env:"WORKFLOW_SLA_URGENT" env-default:"24h"`
	High   time.Duration `yaml:"high"   env:"WORKFLOW_SLA_HIGH"   env-default:"72h"`
	Medium time.Duration `yaml:"medium" env:"WORKFLOW_SLA_MEDIUM" env-default:"168h"`
	Low    time.Duration `yaml:"low"    env:"WORKFLOW_SLA_LOW"    env-default:"336h"`
}

// CooldownConfig holds notification suppression windows.
type CooldownConfig struct {
	Short time.Duration `yaml:"short" env:"COOLDOWN_SHORT" env-default:"60s"`
	Long  time.Duration `yaml:"long"  env:"COOLDOWN_LONG"  env-default:"24h"`
}

// MailConfig holds transactional mail settings. Empty SMTP credentials are a
// valid configuration: the fallback transport is then used directly.
type MailConfig struct {
	From          string        `yaml:"from"            env:"MAIL_FROM"            env-default:"no-reply@casedesk.local"`
	SMTPHost      string        `yaml:"smtp_host"       env:"MAIL_SMTP_HOST"`
	SMTPPort      int           `yaml:"smtp_port"       env:"MAIL_SMTP_PORT"       env-default:"587"`
	SMTPUser      string        `yaml:"smtp_user"       env:"MAIL_SMTP_USER"`
	SMTPPassword  string        `yaml:"smtp_password"   env:"MAIL_SMTP_PASSWORD"`
	FallbackURL   string        `yaml:"fallback_url"    env:"MAIL_FALLBACK_URL"`
	FallbackKey   string        `yaml:"fallback_key"    env:"MAIL_FALLBACK_KEY"`
	Retries       int           `yaml:"retries"         env:"MAIL_RETRIES"         env-default:"3"`
	BaseDelay     time.Duration `yaml:"base_delay"      env:"MAIL_BASE_DELAY"      env-default:"1s"`
	VerifyOnStart bool          `yaml:"verify_on_start" env:"MAIL_VERIFY_ON_START" env-default:"true"`
}

// SMTPConfigured reports whether the primary transport has credentials.
func (m MailConfig) SMTPConfigured() bool {
	return m.SMTPHost != "" && m.SMTPUser != "" && m.SMTPPassword != ""
}

// FallbackConfigured reports whether the HTTP mail API is usable.
func (m MailConfig) FallbackConfigured() bool {
	return m.FallbackURL != "" && m.FallbackKey != ""
}

// PortalConfig holds the customer portal client settings.
type PortalConfig struct {
	BaseURL string        `yaml:"base_url" env:"PORTAL_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"PORTAL_TIMEOUT"  env-default:"5s"`
}

// JobsConfig holds background job intervals. A zero interval disables the job.
type JobsConfig struct {
	DeadlineInterval     time.Duration `yaml:"deadline_interval"     env:"JOBS_DEADLINE_INTERVAL"     env-default:"15m"`
	NotificationInterval time.Duration `yaml:"notification_interval" env:"JOBS_NOTIFICATION_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig holds OpenTelemetry metrics settings.
type TelemetryConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"TELEMETRY_ENABLED"  env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"TELEMETRY_INTERVAL" env-default:"60s"`
}
