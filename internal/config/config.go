// internal/config/config.go
package config

type Config struct {
	Poller PollerConfig `yaml:"poller"`
}

type PollerConfig struct {
	Link LinkConfig `yaml:"link"`
	Poll PollConfig `yaml:"poll"`
	Node string     `yaml:"node"`
	Sink SinkConfig `yaml:"sink"`
}

// ---- LINK ----

type LinkConfig struct {
	Device    string `yaml:"device"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	Parity    string `yaml:"parity"`
	StopBits  int    `yaml:"stop_bits"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- SINK ----

// Sink kinds. The codec does not care where readings go; the sink is
// selected here and bound once at startup.
const (
	SinkStdout = "stdout"
	SinkRedis  = "redis"
)

type SinkConfig struct {
	Kind  string      `yaml:"kind"`
	Key   string      `yaml:"key"`
	Redis RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
	DB       int    `yaml:"db"`
}
