package config

import "os"

type Config struct {
	HTTPAddr   string
	UploadDir  string
	MaxUpload  int64
	CORSOrigin string
	GelfAddr   string
}

func Load() *Config {
	return &Config{
		HTTPAddr:   ":" + getEnv("PORT", "5000"),
		UploadDir:  getEnv("UPLOAD_DIR", "temp_uploads"),
		MaxUpload:  getEnvInt64("MAX_UPLOAD_SIZE", 200<<20),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		GelfAddr:   getEnv("GELF_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int64
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int64(c-'0')
	}
	return n
}
