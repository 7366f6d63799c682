package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

type HTTPCfg struct {
	Port            int           `env:"PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DATABASE" envDefault:"leadassign"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type RedisCfg struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type JwtCfg struct {
	Issuer        string        `env:"AUTH_JWT_ISSUER" envDefault:"leadassign-api"`
	TimeToLive    time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"24h"`
	SigningMethod jwt.SigningMethod
	PrivateKey    crypto.PrivateKey
	PublicKey     crypto.PublicKey
}

type UploadCfg struct {
	// 10 MiB ceiling, uploads above it are rejected before extraction
	MaxFileSize  int64         `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"10485760"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	JwtCfg      JwtCfg
	UploadCfg   UploadCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	cfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPrivateKeyFile := os.Getenv("AUTH_JWT_PRIVATE_KEY_FILE")
	jwtPrivateKeyBytes, err := os.ReadFile(jwtPrivateKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.JwtCfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyFile := os.Getenv("AUTH_JWT_PUBLIC_KEY_FILE")
	jwtPublicKeyBytes, err := os.ReadFile(jwtPublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.JwtCfg.PublicKey = jwtPublicKey

	return cfg, nil
}
