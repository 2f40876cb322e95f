package cache

type Config struct {
	URI     string
	Enabled bool  `yaml:"enabled"`
	TTL     int64 `yaml:"ttl_in_sec"`
	Timeout int64 `yaml:"timeout_in_ms"`
}
