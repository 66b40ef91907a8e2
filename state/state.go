package state

import (
	"context"
	"os"
	"time"

	"github.com/charlesdev96/charlie-chat-app/config"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	Pool        *gorm.DB
	Redis       *redis.Client
	Cloudinary  *cloudinary.Cloudinary
	Logger      *zap.Logger
	Context     = context.Background()
	Validator   = validator.New()
	Config      *config.Config
	JWTLifetime time.Duration
)

func Setup() {
	Validator.RegisterValidation("notblank", validators.NotBlank)
	Validator.RegisterValidation("nospaces", snippets.ValidatorNoSpaces)
	Validator.RegisterValidation("https", snippets.ValidatorIsHttps)
	Validator.RegisterValidation("httporhttps", snippets.ValidatorIsHttpOrHttps)

	genconfig.GenConfig(config.Config{})

	// Secrets may live in a .env file instead of config.yaml
	godotenv.Load()

	cfg, err := os.ReadFile("config.yaml")
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}

	err = yaml.Unmarshal(cfg, &Config)
	if err != nil {
		panic("Failed to parse config file: " + err.Error())
	}

	applyEnvOverrides(Config)

	err = Validator.Struct(Config)
	if err != nil {
		panic("config validation error: " + err.Error())
	}

	JWTLifetime, err = time.ParseDuration(Config.Auth.JWTLifetime)
	if err != nil {
		panic("invalid jwt_lifetime: " + err.Error())
	}

	// Initalize Gorm connection
	Pool, err = gorm.Open(postgres.Open(Config.Database.DatabaseURL), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	Pool.AutoMigrate(&types.User{})
	Pool.AutoMigrate(&types.Follow{})
	Pool.AutoMigrate(&types.Post{})
	Pool.AutoMigrate(&types.Reaction{})
	Pool.AutoMigrate(&types.Comment{})
	Pool.AutoMigrate(&types.Conversation{})
	Pool.AutoMigrate(&types.Message{})

	// Initialize Redis connection
	rOptions, err := redis.ParseURL(Config.Database.RedisURL)
	if err != nil {
		panic("Failed to parse Redis URL: " + err.Error())
	}

	Redis = redis.NewClient(rOptions)
	if err := Redis.Ping(Context).Err(); err != nil {
		panic("Failed to connect to Redis: " + err.Error())
	}

	// Initialize Cloudinary connection
	Cloudinary, err = cloudinary.NewFromParams(
		Config.Cloudinary.CloudName,
		Config.Cloudinary.APIKey,
		Config.Cloudinary.APISecret,
	)
	if err != nil {
		panic("Failed to initialize Cloudinary: " + err.Error())
	}

	// Initialize Logger
	Logger = snippets.CreateZap()
}

// Environment variables win over config.yaml for secrets so deployments never
// have to write credentials to disk.
func applyEnvOverrides(c *config.Config) {
	overrides := []struct {
		env string
		dst *string
	}{
		{"DATABASE_URL", &c.Database.DatabaseURL},
		{"REDIS_URL", &c.Database.RedisURL},
		{"JWT_SECRET", &c.Auth.JWTSecret},
		{"JWT_LIFETIME", &c.Auth.JWTLifetime},
		{"CLOUDINARY_CLOUD_NAME", &c.Cloudinary.CloudName},
		{"CLOUDINARY_API_KEY", &c.Cloudinary.APIKey},
		{"CLOUDINARY_API_SECRET", &c.Cloudinary.APISecret},
	}

	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}
