package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenAudience            string   `json:"token_audience"`
		AccessTokenTTL           Duration `json:"access_token_ttl"`
		RefreshTokenTTL          Duration `json:"refresh_token_ttl"`
		ValidateIssuer           bool     `json:"validate_issuer"`
		ValidateAudience         bool     `json:"validate_audience"`
		ValidateLifetime         bool     `json:"validate_lifetime"`
		RequireHTTPSMetadata     bool     `json:"require_https_metadata"`
		ValidateIssuerSigningKey bool     `json:"validate_issuer_signing_key"`
		SaveToken                bool     `json:"save_token"`
		PasswordScheme           string   `json:"password_scheme"`
		Version                  string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TLSCertFile    string   `json:"tls_cert_file"`
		TLSKeyFile     string   `json:"tls_key_file"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Tracing struct {
		Exporter    string  `json:"exporter"`
		Endpoint    string  `json:"endpoint"`
		SampleRatio float64 `json:"sample_ratio"`
	} `json:"tracing,omitempty"`
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
			JWT: JWT{
				Issuer:                   jsonCfg.App.TokenIssuer,
				Audience:                 jsonCfg.App.TokenAudience,
				SigningKey:               jsonCfg.App.TokenSignKey,
				AccessTokenTTL:           time.Duration(jsonCfg.App.AccessTokenTTL),
				RefreshTokenTTL:          time.Duration(jsonCfg.App.RefreshTokenTTL),
				ValidateIssuer:           jsonCfg.App.ValidateIssuer,
				ValidateAudience:         jsonCfg.App.ValidateAudience,
				ValidateLifetime:         jsonCfg.App.ValidateLifetime,
				RequireHTTPSMetadata:     jsonCfg.App.RequireHTTPSMetadata,
				ValidateIssuerSigningKey: jsonCfg.App.ValidateIssuerSigningKey,
				SaveToken:                jsonCfg.App.SaveToken,
			},
			PasswordScheme: jsonCfg.App.PasswordScheme,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TLSCertFile:    jsonCfg.Server.TLSCertFile,
			TLSKeyFile:     jsonCfg.Server.TLSKeyFile,
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Tracing: Tracing{
			Exporter:    jsonCfg.Tracing.Exporter,
			Endpoint:    jsonCfg.Tracing.Endpoint,
			SampleRatio: jsonCfg.Tracing.SampleRatio,
		},
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
