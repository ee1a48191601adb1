// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API       API       `mapstructure:"api"       mask:"struct"`
	Database  Database  `mapstructure:"database"  mask:"struct"`
	PerfLog   PerfLog   `mapstructure:"perflog"`
	Docker    Docker    `mapstructure:"docker"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint. Defaults to
	// "/metrics/prometheus" when empty; "/metrics" itself serves the raw
	// performance log.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Database holds connection settings for the relational store.
type Database struct {
	// Driver selects the SQL driver: "postgres" or "sqlite".
	Driver string `mapstructure:"driver"   validate:"required,oneof=postgres sqlite"`
	// Host the database server hostname (postgres).
	Host string `mapstructure:"host"`
	// Port the database server port (postgres).
	Port int `mapstructure:"port"     validate:"gte=0,lte=65535"`
	// User for database authentication (postgres).
	User string `mapstructure:"user"`
	// Password for database authentication (postgres).
	Password string `mapstructure:"password" mask:"password"`
	// Name of the database to use (postgres).
	Name string `mapstructure:"name"`
	// SSLMode for the postgres connection. Defaults to "disable".
	SSLMode string `mapstructure:"ssl_mode"`
	// Path to the database file when driver is "sqlite" (":memory:" allowed).
	Path string `mapstructure:"path"`
}

// PerfLog holds settings for the file-backed performance log.
type PerfLog struct {
	// Path to the newline-delimited JSON performance log.
	Path string `mapstructure:"path" validate:"required"`
}

// Docker holds settings for the container stats collector.
type Docker struct {
	// Enabled enables or disables periodic container stats collection.
	Enabled bool `mapstructure:"enabled"`
	// Interval between collection ticks (e.g. "30s", "1m").
	Interval string `mapstructure:"interval"`
	// Path to the CSV container stats log.
	Path string `mapstructure:"path"`
}

// API configuration settings.
type API struct {
	Client `mask:"struct"`
	Server `mask:"struct"`
}

// Client configuration settings.
type Client struct {
	// URL the client will connect to.
	URL string `mapstructure:"url"`
	// Security contains security-related configuration for the client, such as access tokens.
	Security ClientSecurity `mapstructure:"security" mask:"struct"`
}

// Server configuration settings.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	// Security contains security-related configuration for the server, such as CORS.
	Security ServerSecurity `mapstructure:"security"`
}

// ServerSecurity represents security-related settings for the server.
type ServerSecurity struct {
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
}

// ClientSecurity represents security-related settings for the client.
type ClientSecurity struct {
	// BearerToken is the opaque token presented on authenticated requests.
	// Tokens are issued by POST /login and validated against the user store.
	BearerToken string `mapstructure:"bearer_token" mask:"password"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "foo").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}
