package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// defaultConfig returns the lowest-priority configuration source. It only
// fills fields left empty by every other source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			Generative: Generative{
				BaseURL:        "https://api.anthropic.com",
				Model:          "claude-3-haiku-20240307",
				APIVersion:     "2023-06-01",
				MaxTokens:      2000,
				RequestTimeout: 60 * time.Second,
			},
			Images: Images{
				BaseURL:        "https://api.spoonacular.com",
				CDNBaseURL:     "https://spoonacular.com/cdn/ingredients_100x100/",
				RequestTimeout: 10 * time.Second,
				RatePerSecond:  1,
				Burst:          1,
				CacheTTL:       24 * time.Hour,
			},
		},
		Workers: Workers{
			ImageQueueSize: 100,
			ImageWorkers:   2,
		},
	}
}
