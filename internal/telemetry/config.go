package telemetry

// Config controls the optional OTLP trace exporter.
//
// Tracing is off by default; when disabled, Init installs a no-op tracer
// and never dials the collector.
type Config struct {
	// Enabled turns tracing on.
	Enabled bool

	// ServiceName and ServiceVersion identify this process in the
	// trace backend.
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP gRPC collector address as host:port.
	Endpoint string

	// Insecure disables TLS on the exporter connection.
	Insecure bool

	// SampleRate is the fraction of traces to keep, from 0.0 (none)
	// to 1.0 (all).
	SampleRate float64
}

// DefaultConfig returns the configuration used when no telemetry settings
// are supplied: tracing disabled, local collector defaults otherwise.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "shelf",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}
