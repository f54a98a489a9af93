package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Session   SessionConfig   `yaml:"session"`
	Assistant AssistantConfig `yaml:"assistant"`
	Voice     VoiceConfig     `yaml:"voice"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// AuthConfig holds session token and one-time-code settings.
//
// VoterCode and AdminCode are development stand-ins for a real OTP delivery
// channel; they must be replaced before any real deployment.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"dhaka17-portal"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	VoterCode      string        `yaml:"voter_code"       env:"AUTH_VOTER_CODE"       env-default:"1234"`
	AdminCode      string        `yaml:"admin_code"       env:"AUTH_ADMIN_CODE"       env-default:"admin"`
	ChallengeTTL   time.Duration `yaml:"challenge_ttl"    env:"AUTH_CHALLENGE_TTL"    env-default:"5m"`
	CodeHashCost   int           `yaml:"code_hash_cost"   env:"AUTH_CODE_HASH_COST"   env-default:"10"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	Path string `yaml:"path" env:"SESSION_PATH" env-default:"./data/session.json"`
}

// AssistantConfig holds text assistant relay settings.
type AssistantConfig struct {
	APIKey      string  `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	Model       string  `yaml:"model"       env:"ASSISTANT_MODEL"       env-default:"claude-haiku-4-5"`
	MaxTokens   int64   `yaml:"max_tokens"  env:"ASSISTANT_MAX_TOKENS"  env-default:"1024"`
	Temperature float64 `yaml:"temperature" env:"ASSISTANT_TEMPERATURE" env-default:"0.3"`
}

// VoiceConfig holds the realtime voice relay settings.
type VoiceConfig struct {
	Endpoint  string        `yaml:"endpoint"   env:"VOICE_ENDPOINT"   env-default:"wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"`
	APIKey    string        `yaml:"api_key"    env:"VOICE_API_KEY"`
	Model     string        `yaml:"model"      env:"VOICE_MODEL"      env-default:"models/gemini-2.5-flash-native-audio-preview-12-2025"`
	VoiceName string        `yaml:"voice_name" env:"VOICE_NAME"       env-default:"Kore"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"VOICE_DIAL_TIMEOUT" env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
