package config

type Config struct {
	Server     Server     `yaml:"server" validate:"required"`
	Database   Database   `yaml:"storage" validate:"required"`
	Auth       Auth       `yaml:"auth" validate:"required"`
	Cloudinary Cloudinary `yaml:"cloudinary" validate:"required"`
}

type Server struct {
	Port string `yaml:"port" comment:"Server Port" validate:"required"`
	Env  string `yaml:"env" comment:"Server Environment" validate:"required"`
}

type Database struct {
	DatabaseURL string `yaml:"database_url" comment:"Database URL" validate:"required"`
	RedisURL    string `yaml:"redis_url" comment:"Redis URL" validate:"required"`
}

type Auth struct {
	// Overridable via JWT_SECRET / JWT_LIFETIME.
	JWTSecret   string `yaml:"jwt_secret" comment:"Token signing secret" validate:"required"`
	JWTLifetime string `yaml:"jwt_lifetime" comment:"Token lifetime (Go duration, e.g. 24h)" validate:"required"`
}

type Cloudinary struct {
	// Overridable via CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY / CLOUDINARY_API_SECRET.
	CloudName string `yaml:"cloud_name" comment:"Cloudinary cloud name" validate:"required"`
	APIKey    string `yaml:"api_key" comment:"Cloudinary API key" validate:"required"`
	APISecret string `yaml:"api_secret" comment:"Cloudinary API secret" validate:"required"`
	Folder    string `yaml:"folder" comment:"Cloudinary upload folder" validate:"required"`
}
