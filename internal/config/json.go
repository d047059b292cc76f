package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version           string `json:"version"`
		LogLevel          string `json:"log_level"`
		AdminTokenSignKey string `json:"admin_token_sign_key"`
		AdminTokenIssuer  string `json:"admin_token_issuer"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Resume struct {
		ObjectKey       string `json:"object_key"`
		Bucket          string `json:"bucket"`
		LinkTTLSeconds  int    `json:"link_ttl_seconds"`
		Region          string `json:"region"`
		Endpoint        string `json:"endpoint"`
		UsePathStyle    bool   `json:"use_path_style"`
		SkipObjectCheck bool   `json:"skip_object_check"`
	} `json:"resume,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ReadinessTimeout  Duration `json:"readiness_timeout"`
		TrustProxyHeaders bool     `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Workers struct {
		PendingSweepInterval Duration `json:"pending_sweep_interval"`
		PendingStaleAfter    Duration `json:"pending_stale_after"`
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

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
			AdminTokenSignKey: jsonCfg.App.AdminTokenSignKey,
			AdminTokenIssuer:  jsonCfg.App.AdminTokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Resume: Resume{
			ObjectKey:       jsonCfg.Resume.ObjectKey,
			Bucket:          jsonCfg.Resume.Bucket,
			LinkTTLSeconds:  jsonCfg.Resume.LinkTTLSeconds,
			Region:          jsonCfg.Resume.Region,
			Endpoint:        jsonCfg.Resume.Endpoint,
			UsePathStyle:    jsonCfg.Resume.UsePathStyle,
			SkipObjectCheck: jsonCfg.Resume.SkipObjectCheck,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ReadinessTimeout:  time.Duration(jsonCfg.Server.ReadinessTimeout),
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		Workers: Workers{
			PendingSweepInterval: time.Duration(jsonCfg.Workers.PendingSweepInterval),
			PendingStaleAfter:    time.Duration(jsonCfg.Workers.PendingStaleAfter),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
