// Package config resolves the service's boot-time configuration from
// an external key/value store, speaking the same hash-keyed layout
// used elsewhere in this fleet's Redis-backed config stores.
package config

import (
	"strconv"
)

// Store is the minimal read interface the boot config needs. It is
// satisfied by RedisStore and by fakes in tests.
type Store interface {
	Get(key string) (string, bool)
}

// BootConfig is the parsed, typed result of reading every key this
// service recognises out of the store. Unset keys fall back to the
// defaults below; the core radar/reporter packages never see the
// store itself, only this struct.
type BootConfig struct {
	HAURL    string
	HAPort   uint16
	HAToken  string
	UARTPath string
	Baud     int

	AutostartHA   bool
	AutostartWifi bool
}

const (
	defaultHAPort   = 8123
	defaultUARTPath = "/dev/ttyS1"
	defaultBaud     = 256000
)

// LoadBootConfig reads the recognised keys from store, applying
// defaults for anything unset. Malformed numeric/boolean values fall
// back to their defaults rather than failing the whole load, since a
// single bad key should not prevent boot.
func LoadBootConfig(store Store) BootConfig {
	cfg := BootConfig{
		HAPort:   defaultHAPort,
		UARTPath: defaultUARTPath,
		Baud:     defaultBaud,
	}

	if v, ok := store.Get("ha.url"); ok {
		cfg.HAURL = v
	}
	if v, ok := store.Get("ha.port"); ok {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			cfg.HAPort = uint16(port)
		}
	}
	if v, ok := store.Get("ha.token"); ok {
		cfg.HAToken = v
	}
	if v, ok := store.Get("mmwave.uart"); ok {
		cfg.UARTPath = v
	}
	if v, ok := store.Get("mmwave.baud"); ok {
		if baud, err := strconv.Atoi(v); err == nil {
			cfg.Baud = baud
		}
	}
	if v, ok := store.Get("boot.autostart_ha"); ok {
		cfg.AutostartHA = v == "1"
	}
	if v, ok := store.Get("boot.autostart_wifi"); ok {
		cfg.AutostartWifi = v == "1"
	}

	return cfg
}
