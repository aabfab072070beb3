package config

import "testing"

type fakeStore map[string]string

func (f fakeStore) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestLoadBootConfigDefaults(t *testing.T) {
	cfg := LoadBootConfig(fakeStore{})

	if cfg.HAPort != defaultHAPort {
		t.Errorf("HAPort = %d, want %d", cfg.HAPort, defaultHAPort)
	}
	if cfg.UARTPath != defaultUARTPath {
		t.Errorf("UARTPath = %q, want %q", cfg.UARTPath, defaultUARTPath)
	}
	if cfg.Baud != defaultBaud {
		t.Errorf("Baud = %d, want %d", cfg.Baud, defaultBaud)
	}
	if cfg.AutostartHA || cfg.AutostartWifi {
		t.Error("autostart flags should default to false")
	}
}

func TestLoadBootConfigOverrides(t *testing.T) {
	store := fakeStore{
		"ha.url":            "homeassistant.local",
		"ha.port":           "8321",
		"ha.token":          "secret-token",
		"mmwave.uart":       "/dev/ttyUSB0",
		"mmwave.baud":       "115200",
		"boot.autostart_ha": "1",
	}
	cfg := LoadBootConfig(store)

	if cfg.HAURL != "homeassistant.local" {
		t.Errorf("HAURL = %q", cfg.HAURL)
	}
	if cfg.HAPort != 8321 {
		t.Errorf("HAPort = %d, want 8321", cfg.HAPort)
	}
	if cfg.HAToken != "secret-token" {
		t.Errorf("HAToken = %q", cfg.HAToken)
	}
	if cfg.UARTPath != "/dev/ttyUSB0" {
		t.Errorf("UARTPath = %q", cfg.UARTPath)
	}
	if cfg.Baud != 115200 {
		t.Errorf("Baud = %d, want 115200", cfg.Baud)
	}
	if !cfg.AutostartHA {
		t.Error("AutostartHA = false, want true")
	}
	if cfg.AutostartWifi {
		t.Error("AutostartWifi = true, want false (unset key)")
	}
}

func TestLoadBootConfigMalformedNumbersFallBackToDefault(t *testing.T) {
	store := fakeStore{
		"ha.port":     "not-a-number",
		"mmwave.baud": "also-not-a-number",
	}
	cfg := LoadBootConfig(store)

	if cfg.HAPort != defaultHAPort {
		t.Errorf("HAPort = %d, want default %d on malformed input", cfg.HAPort, defaultHAPort)
	}
	if cfg.Baud != defaultBaud {
		t.Errorf("Baud = %d, want default %d on malformed input", cfg.Baud, defaultBaud)
	}
}
