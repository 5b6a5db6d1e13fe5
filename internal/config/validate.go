package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Root == "" {
		errs = append(errs, "library.root: required")
	} else if info, err := os.Stat(c.Library.Root); err != nil {
		errs = append(errs, fmt.Sprintf("library.root: %v", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Sprintf("library.root: %s is not a directory", c.Library.Root))
	}

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Fetch.Timeout < 0 {
		errs = append(errs, "fetch.timeout: must not be negative")
	}

	return errs
}
