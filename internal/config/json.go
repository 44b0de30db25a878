package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string `json:"token_sign_key"`
		TokenIssuer   string `json:"token_issuer"`
		TokenAudience string `json:"token_audience"`
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Driver       string `json:"driver"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Generative struct {
			BaseURL        string   `json:"base_url"`
			APIKey         string   `json:"api_key"`
			Model          string   `json:"model"`
			APIVersion     string   `json:"api_version"`
			MaxTokens      int      `json:"max_tokens"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"generative,omitempty"`

		Images struct {
			BaseURL        string   `json:"base_url"`
			CDNBaseURL     string   `json:"cdn_base_url"`
			APIKey         string   `json:"api_key"`
			RequestTimeout Duration `json:"request_timeout"`
			RatePerSecond  float64  `json:"rate_per_second"`
			Burst          int      `json:"burst"`
			CacheTTL       Duration `json:"cache_ttl"`
		} `json:"images,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ImageQueueSize int `json:"image_queue_size"`
		ImageWorkers   int `json:"image_workers"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	gen := jsonCfg.Adapter.Generative
	img := jsonCfg.Adapter.Images

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenAudience: jsonCfg.App.TokenAudience,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Driver:       jsonCfg.Storage.DB.Driver,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			Generative: Generative{
				BaseURL:        gen.BaseURL,
				APIKey:         gen.APIKey,
				Model:          gen.Model,
				APIVersion:     gen.APIVersion,
				MaxTokens:      gen.MaxTokens,
				RequestTimeout: time.Duration(gen.RequestTimeout),
			},
			Images: Images{
				BaseURL:        img.BaseURL,
				CDNBaseURL:     img.CDNBaseURL,
				APIKey:         img.APIKey,
				RequestTimeout: time.Duration(img.RequestTimeout),
				RatePerSecond:  img.RatePerSecond,
				Burst:          img.Burst,
				CacheTTL:       time.Duration(img.CacheTTL),
			},
		},
		Workers: Workers{
			ImageQueueSize: jsonCfg.Workers.ImageQueueSize,
			ImageWorkers:   jsonCfg.Workers.ImageWorkers,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
