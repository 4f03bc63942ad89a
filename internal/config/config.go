package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Auth       AuthConfig       `yaml:"auth"`
	Poller     PollerConfig     `yaml:"poller"`
	Generation GenerationConfig `yaml:"generation"`
	AI         AIConfig         `yaml:"ai"`
	Storage    StorageConfig    `yaml:"storage"`
	Audio      AudioConfig      `yaml:"audio"`
	Redis      RedisConfig      `yaml:"redis"`
	Keywords   KeywordsConfig   `yaml:"keywords"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
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
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP request limits for the REST API.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// AuthConfig holds bearer-token settings.
// With an empty JWTSecret every request acts as DefaultUserID.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"softfix-helper"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
	DefaultUserID  string        `yaml:"default_user_id"  env:"AUTH_DEFAULT_USER_ID"  env-default:"default-user"`
}

// Enabled reports whether bearer tokens are required.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// PollerConfig holds narration-generation poller settings.
type PollerConfig struct {
	Disabled   bool          `yaml:"disabled"    env:"POLLER_DISABLED"`
	Interval   time.Duration `yaml:"interval"    env:"POLLER_INTERVAL"    env-default:"2m"`
	BatchSize  int           `yaml:"batch_size"  env:"POLLER_BATCH_SIZE"  env-default:"5"`
	StaleAfter time.Duration `yaml:"stale_after" env:"POLLER_STALE_AFTER" env-default:"15m"`
	WorkerID   string        `yaml:"worker_id"   env:"POLLER_WORKER_ID"`
}

// GenerationConfig holds asset-generation settings.
type GenerationConfig struct {
	VariationCap   int           `yaml:"variation_cap"   env:"GENERATION_VARIATION_CAP"   env-default:"20"`
	ThumbnailCount int           `yaml:"thumbnail_count" env:"GENERATION_THUMBNAIL_COUNT" env-default:"10"`
	ThumbnailDelay time.Duration `yaml:"thumbnail_delay" env:"GENERATION_THUMBNAIL_DELAY" env-default:"1s"`
	PromptsPath    string        `yaml:"prompts_path"    env:"GENERATION_PROMPTS_PATH"`
}

// AIConfig selects and configures the generative backends.
type AIConfig struct {
	TextProvider string `yaml:"text_provider" env:"AI_TEXT_PROVIDER" env-default:"anthropic"`
	MaxTokens    int    `yaml:"max_tokens"    env:"AI_MAX_TOKENS"    env-default:"4096"`

	AnthropicAPIKey string `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"   env-default:"claude-sonnet-4-5"`

	OpenAIAPIKey      string `yaml:"openai_api_key"      env:"OPENAI_API_KEY"`
	OpenAIModel       string `yaml:"openai_model"        env:"OPENAI_MODEL"        env-default:"gpt-4o-mini"`
	OpenAIImageModel  string `yaml:"openai_image_model"  env:"OPENAI_IMAGE_MODEL"  env-default:"dall-e-3"`
	OpenAIImageSize   string `yaml:"openai_image_size"   env:"OPENAI_IMAGE_SIZE"   env-default:"1792x1024"`
	OpenAISpeechModel string `yaml:"openai_speech_model" env:"OPENAI_SPEECH_MODEL" env-default:"tts-1"`
	OpenAIVoice       string `yaml:"openai_voice"        env:"OPENAI_VOICE"        env-default:"alloy"`

	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model"   env:"GEMINI_MODEL"   env-default:"gemini-2.0-flash"`

	TextTimeout   time.Duration `yaml:"text_timeout"   env:"AI_TEXT_TIMEOUT"   env-default:"2m"`
	ScriptTimeout time.Duration `yaml:"script_timeout" env:"AI_SCRIPT_TIMEOUT" env-default:"5m"`
	ImageTimeout  time.Duration `yaml:"image_timeout"  env:"AI_IMAGE_TIMEOUT"  env-default:"2m"`
	SpeechTimeout time.Duration `yaml:"speech_timeout" env:"AI_SPEECH_TIMEOUT" env-default:"5m"`
}

// StorageConfig selects the object store for thumbnails and audio.
type StorageConfig struct {
	Driver          string        `yaml:"driver"           env:"STORAGE_DRIVER"           env-default:"local"`
	Bucket          string        `yaml:"bucket"           env:"STORAGE_BUCKET"`
	CredentialsFile string        `yaml:"credentials_file" env:"STORAGE_CREDENTIALS_FILE"`
	PublicBaseURL   string        `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"http://localhost:8080/uploads"`
	LocalDir        string        `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"        env-default:"./uploads"`
	UploadTimeout   time.Duration `yaml:"upload_timeout"   env:"STORAGE_UPLOAD_TIMEOUT"   env-default:"2m"`
	DeleteTimeout   time.Duration `yaml:"delete_timeout"   env:"STORAGE_DELETE_TIMEOUT"   env-default:"30s"`
}

// AudioConfig holds narration audio transcoding settings.
type AudioConfig struct {
	FFmpegPath       string        `yaml:"ffmpeg_path"       env:"AUDIO_FFMPEG_PATH"       env-default:"ffmpeg"`
	Bitrate          string        `yaml:"bitrate"           env:"AUDIO_BITRATE"           env-default:"320k"`
	SampleRate       int           `yaml:"sample_rate"       env:"AUDIO_SAMPLE_RATE"       env-default:"24000"`
	TranscodeTimeout time.Duration `yaml:"transcode_timeout" env:"AUDIO_TRANSCODE_TIMEOUT" env-default:"2m"`
	TempDir          string        `yaml:"temp_dir"          env:"AUDIO_TEMP_DIR"`
}

// RedisConfig enables the cross-replica poller lock when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	LockTTL  time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"10m"`
}

// KeywordsConfig holds spreadsheet import settings.
type KeywordsConfig struct {
	ImportRoot     string `yaml:"import_root"      env:"KEYWORDS_IMPORT_ROOT"      env-default:"./keywords"`
	MaxUploadFiles int    `yaml:"max_upload_files" env:"KEYWORDS_MAX_UPLOAD_FILES" env-default:"20"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"KEYWORDS_MAX_UPLOAD_BYTES" env-default:"52428800"`
}
