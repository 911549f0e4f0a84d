package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// SnapshotConfig selects and configures the durable key-value backend the
// in-memory snapshot is mirrored to.
type SnapshotConfig struct {
	Backend string      `mapstructure:"backend"` // "file" | "s3" | "redis"
	Dir     string      `mapstructure:"dir"`     // file backend
	S3      S3Config    `mapstructure:"s3"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	KeyPrefix       string `mapstructure:"key_prefix"`
}

type RedisConfig struct {
	URI       string `mapstructure:"uri"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// MirrorConfig configures the best-effort remote mirror. Disabled by
// default; when disabled a no-op mirror is wired in.
type MirrorConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	MongoURI string `mapstructure:"mongo_uri"`
	Database string `mapstructure:"database"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values,
	// e.g. snapshot.backend -> SNAPSHOT_BACKEND.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("snapshot.backend", "file")
	viper.SetDefault("snapshot.dir", "./data")
	viper.SetDefault("snapshot.redis.key_prefix", "fitsync:")
	viper.SetDefault("mirror.enabled", false)
	viper.SetDefault("mirror.database", "fitsync")

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults carry the rest.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
