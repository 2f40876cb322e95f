package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pixvault/internal/infrastructure/auth"
	"pixvault/internal/infrastructure/cache"
	"pixvault/internal/infrastructure/database"
	"pixvault/internal/infrastructure/minio"
	"pixvault/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment string             `yaml:"environment"`
	Default     DefaultConfig      `yaml:"default"`
	MinIOClient minio.ClientConfig `yaml:"minio_client"`
	MinIOSigner minio.SignerConfig `yaml:"minio_signer"`
	DBConfig    database.Config    `yaml:"db_config"`
	CacheConfig cache.Config       `yaml:"size_cache_config"`
	AuthConfig  auth.Config        `yaml:"auth"`
	Logger      logger.Config      `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.CacheConfig.URI = os.Getenv("CACHE_URI")
	config.AuthConfig.Secret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	return nil
}
