package config

// Config holds all application configuration.
// It is constructed once at startup by Load and passed explicitly into
// component constructors; there is no package-level settings state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret is the symmetric signing secret. Minimum length is enforced
	// here rather than at the signing site so a weak secret fails at startup.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// JWTAlgorithm selects the HMAC signing method for issued tokens.
	JWTAlgorithm string `mapstructure:"jwt_algorithm" validate:"required,oneof=HS256 HS384 HS512"`

	// TokenLifetimeMinutes is the access token lifetime in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// FakePassword is a fixed plaintext password used by test fixtures to
	// seed accounts with a known credential. It is never used to authenticate
	// anything in production paths.
	FakePassword string `mapstructure:"fake_password"`
}
