package configuration

import (
	"fmt"
	"os"
	"strconv"

	"my-tube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Redis    Redis    `json:"redis"`
	Media    Media    `json:"media"`
	Auth     Auth     `json:"auth"`
}

type App struct {
	Port       int    `json:"port"`
	CorsOrigin string `json:"corsOrigin"`
}

type Database struct {
	Mongo Mongo `json:"mongo"`
}

type Mongo struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Redis struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Media struct {
	Bucket        string `json:"bucket"`
	Region        string `json:"region"`
	Endpoint      string `json:"endpoint"`
	PublicBaseURL string `json:"publicBaseURL"`
}

type Auth struct {
	AccessTokenSecret  string `json:"accessTokenSecret"`
	RefreshTokenSecret string `json:"refreshTokenSecret"`
	AccessTokenTTLMin  int    `json:"accessTokenTTLMin"`
	RefreshTokenTTLMin int    `json:"refreshTokenTTLMin"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initDatabase(&C)
	initAuth(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		C.App.CorsOrigin = v
	}
	if C.App.CorsOrigin == "" {
		C.App.CorsOrigin = "http://localhost:5173"
	}
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		if v := os.Getenv("MONGO_PORT"); v != "" {
			C.Database.Mongo.Port = v
		} else {
			C.Database.Mongo.Port = "27017"
		}
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Mongo.Name == "" {
		if v := os.Getenv("MONGO_DB_NAME"); v != "" {
			C.Database.Mongo.Name = v
		} else {
			C.Database.Mongo.Name = "mytube"
		}
	}
	if C.Redis.Host == "" {
		C.Redis.Host = os.Getenv("REDIS_HOST")
	}
	if C.Redis.Port == "" {
		if v := os.Getenv("REDIS_PORT"); v != "" {
			C.Redis.Port = v
		} else {
			C.Redis.Port = "6379"
		}
	}
	if C.Media.Bucket == "" {
		C.Media.Bucket = os.Getenv("MEDIA_BUCKET")
	}
	if C.Media.Region == "" {
		if v := os.Getenv("MEDIA_REGION"); v != "" {
			C.Media.Region = v
		} else {
			C.Media.Region = "us-east-1"
		}
	}
	if C.Media.Endpoint == "" {
		C.Media.Endpoint = os.Getenv("MEDIA_ENDPOINT")
	}
	if C.Media.PublicBaseURL == "" {
		C.Media.PublicBaseURL = os.Getenv("MEDIA_PUBLIC_BASE_URL")
	}
}

func initAuth(C *Config) {
	// Secrets from the environment override the config file when provided.
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		C.Auth.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		C.Auth.RefreshTokenSecret = v
	}
	if C.Auth.AccessTokenTTLMin == 0 {
		C.Auth.AccessTokenTTLMin = 15
	}
	if C.Auth.RefreshTokenTTLMin == 0 {
		C.Auth.RefreshTokenTTLMin = 10 * 24 * 60
	}
	if C.Auth.AccessTokenSecret == "" || C.Auth.RefreshTokenSecret == "" {
		logger.GetLogger().Warn("Token secrets not set; authentication will fail. Provide ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET via environment.")
	}
}
