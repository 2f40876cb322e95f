package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// SignerConfig controls URL signing: validity window, the display
// transform and the object-size threshold above which it is skipped.
type SignerConfig struct {
	Bucket         string `yaml:"bucket"`
	Timeout        int64  `yaml:"timeout_in_ms"`
	URLExpiry      int64  `yaml:"url_expiry_in_sec"`
	StyleThreshold int64  `yaml:"style_threshold_bytes"`
	DisplayStyle   string `yaml:"display_style"`
}
