package config

import "os"

// LogLevel is read once at startup. The deploy target and bundle file
// defaults go through the caller's LookupFunc, see EnvDeployTarget.
var (
	LogLevel = os.Getenv("LOG_LEVEL")
)
