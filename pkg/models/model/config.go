package model

import "fmt"

// Config is an ON/OFF switch usable as a flag.Value.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON": On,
	"On": On,
	"on": On,
	"1":  On,

	"OFF": Off,
	"Off": Off,
	"off": Off,
	"0":   Off,
}

func NewConfig(s string) Config {
	return configName[s]
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}

func (c *Config) Set(s string) error {
	v, ok := configName[s]
	if !ok {
		return fmt.Errorf("want ON or OFF, got %q", s)
	}
	*c = v
	return nil
}
