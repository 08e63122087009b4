package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagCorner    = flag.String("corner", "", "Corner to tilt toward (e.g. top-right)")
	flagDirection = flag.String("direction", "", "Cycle direction: clockwise or counter-clockwise")
	flagStatic    = flag.Bool("static", false, "Hold a fixed pose instead of cycling")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCorner != "" {
		cfg.Tilt.Corner = *flagCorner
	}
	if *flagDirection != "" {
		cfg.Tilt.Direction = *flagDirection
	}
	if *flagStatic {
		cfg.Tilt.Mode = "static"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
