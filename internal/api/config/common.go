package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Stats    StatsConfig    `mapstructure:"stats"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// AuthConfig 外部身份提供方配置
type AuthConfig struct {
	// PublicKey 会话 Token 的 RS256 验签公钥 (PEM)
	PublicKey string `mapstructure:"public_key"`
	// Issuer 期望的签发方，留空则不校验
	Issuer string `mapstructure:"issuer"`
	// APIURL 提供方 Backend API 地址，用于拉取用户展示名
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// StatsConfig 统计快照任务配置
type StatsConfig struct {
	Schedule string `mapstructure:"schedule"`
}
