package link

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Device:        "/dev/ttyACM0",
		Baud:          115200,
		Parity:        "none",
		StopBits:      "1",
		FlowControl:   "none",
		ReadTimeout:   100 * time.Millisecond,
		SendInterval:  5 * time.Millisecond,
		RetryInterval: time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing device", func(c *Config) { c.Device = "" }, "device"},
		{"zero baud", func(c *Config) { c.Baud = 0 }, "baud"},
		{"bad parity", func(c *Config) { c.Parity = "mark" }, "parity"},
		{"bad stop bits", func(c *Config) { c.StopBits = "3" }, "stop_bits"},
		{"unsupported flow control", func(c *Config) { c.FlowControl = "hardware" }, "flow_control"},
		{"zero send interval", func(c *Config) { c.SendInterval = 0 }, "send_interval"},
		{"zero retry interval", func(c *Config) { c.RetryInterval = 0 }, "retry_interval"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestConfigStopBitsAliases(t *testing.T) {
	cfg := validConfig()
	for _, v := range []string{"1", "1.0", "1.5", "2", "2.0"} {
		cfg.StopBits = v
		require.NoError(t, cfg.Validate(), "stop bits %q", v)
	}
}
