package config

import "time"

// Demo quota shown on the storage indicator.
const (
	gib = int64(1) << 30

	defaultStorageUsedBytes  = gib*3 + gib/5 // 3.2 GiB
	defaultStorageTotalBytes = 15 * gib
)

// Config holds runtime settings for the my-space CLI.
//
// Fields:
//   - DemoUserID / DemoPasswordHash: the built-in demo account; the hash is
//     a bcrypt digest the auth service compares against.
//   - SecretKey / TokenValidityDuration: session token signing parameters.
//   - SessionDBPath: sqlite file the session repository persists into.
//   - NotificationTTL: how long a notification stays up before auto-dismiss.
//   - SimulateLatency: make the in-memory repository delay each operation
//     the way a remote backend would.
//   - StorageUsedBytes / StorageTotalBytes: quota figures for the storage
//     indicator.
type Config struct {
	DemoUserID       string
	DemoPasswordHash string

	SecretKey             string
	TokenValidityDuration time.Duration

	SessionDBPath   string
	NotificationTTL time.Duration
	SimulateLatency bool

	StorageUsedBytes  int64
	StorageTotalBytes int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DemoUserID = "23022-CM-032"
	c.DemoPasswordHash = "$2b$10$FvpOFHtio2U.WXDG5M4NN.SGvJ7xsAswS/zBHgCcu7A67bUnRHlmG"
	c.SecretKey = "my-space-demo-secret"
	c.TokenValidityDuration = 24 * time.Hour
	c.SessionDBPath = "myspace.db"
	c.NotificationTTL = 3 * time.Second
	c.SimulateLatency = true
	c.StorageUsedBytes = defaultStorageUsedBytes
	c.StorageTotalBytes = defaultStorageTotalBytes
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
