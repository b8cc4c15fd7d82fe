package config

import "os"

type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	ViaCEPBaseURL string
}

func Load() Config {
	return Config{
		Addr:          getenv("COMANDA_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ViaCEPBaseURL: getenv("VIACEP_BASE_URL", "https://viacep.com.br"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
