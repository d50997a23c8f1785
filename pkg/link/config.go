package link

import (
	"flag"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/tarm/serial"
)

// Config is the serial link configuration. Defaults come from the
// environment; cmd binaries expose the same fields as flags.
type Config struct {
	Device      string        `env:"MCULINK_DEVICE"`
	Baud        int           `env:"MCULINK_BAUD" envDefault:"115200"`
	Parity      string        `env:"MCULINK_PARITY" envDefault:"none"`
	StopBits    string        `env:"MCULINK_STOP_BITS" envDefault:"1"`
	FlowControl string        `env:"MCULINK_FLOW_CONTROL" envDefault:"none"`
	ReadTimeout time.Duration `env:"MCULINK_READ_TIMEOUT" envDefault:"100ms"`

	// SendInterval is the outgoing frame cadence.
	SendInterval time.Duration `env:"MCULINK_SEND_INTERVAL" envDefault:"5ms"`
	// RetryInterval paces port reopen attempts and the idle poll of
	// reader/writer while the link is down. Retries never stop.
	RetryInterval time.Duration `env:"MCULINK_RETRY_INTERVAL" envDefault:"1s"`
}

// NewConfig creates a Config populated from the environment.
func NewConfig() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// SetupFlags registers config fields as command line flags.
func (c *Config) SetupFlags() {
	flag.StringVar(&c.Device, "device", c.Device, "Serial device path.")
	flag.IntVar(&c.Baud, "baud", c.Baud, "Serial baud rate.")
	flag.StringVar(&c.Parity, "parity", c.Parity, "Parity: none, odd, even.")
	flag.StringVar(&c.StopBits, "stop-bits", c.StopBits, "Stop bits: 1, 1.5, 2.")
	flag.StringVar(&c.FlowControl, "flow-control", c.FlowControl, "Flow control: none.")
	flag.DurationVar(&c.SendInterval, "send-interval", c.SendInterval, "Outgoing frame interval.")
	flag.DurationVar(&c.RetryInterval, "retry-interval", c.RetryInterval, "Port reopen retry interval.")
}

// Validate checks the configuration. Any error is fatal to startup.
func (c *Config) Validate() error {
	if c.Device == "" {
		return &ConfigError{Field: "device", Value: c.Device}
	}
	if c.Baud <= 0 {
		return &ConfigError{Field: "baud", Value: strconv.Itoa(c.Baud)}
	}
	if _, err := c.parity(); err != nil {
		return err
	}
	if _, err := c.stopBits(); err != nil {
		return err
	}
	// tarm/serial offers no flow control knob; anything but "none" is a
	// misconfiguration, not something to ignore silently.
	if c.FlowControl != "none" {
		return &ConfigError{Field: "flow_control", Value: c.FlowControl}
	}
	if c.SendInterval <= 0 {
		return &ConfigError{Field: "send_interval", Value: c.SendInterval.String()}
	}
	if c.RetryInterval <= 0 {
		return &ConfigError{Field: "retry_interval", Value: c.RetryInterval.String()}
	}
	return nil
}

func (c *Config) parity() (serial.Parity, error) {
	switch c.Parity {
	case "none":
		return serial.ParityNone, nil
	case "odd":
		return serial.ParityOdd, nil
	case "even":
		return serial.ParityEven, nil
	}
	return 0, &ConfigError{Field: "parity", Value: c.Parity}
}

func (c *Config) stopBits() (serial.StopBits, error) {
	switch c.StopBits {
	case "1", "1.0":
		return serial.Stop1, nil
	case "1.5":
		return serial.Stop1Half, nil
	case "2", "2.0":
		return serial.Stop2, nil
	}
	return 0, &ConfigError{Field: "stop_bits", Value: c.StopBits}
}

// open opens the serial device. The read timeout bounds blocking reads
// so the receive loop can observe cancellation.
func (c *Config) open() (Port, error) {
	parity, err := c.parity()
	if err != nil {
		return nil, err
	}
	stopBits, err := c.stopBits()
	if err != nil {
		return nil, err
	}
	return serial.OpenPort(&serial.Config{
		Name:        c.Device,
		Baud:        c.Baud,
		Parity:      parity,
		StopBits:    stopBits,
		ReadTimeout: c.ReadTimeout,
	})
}
