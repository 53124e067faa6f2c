package types

type RunMode string

const (
	// ModeOnce runs a single generation pass and exits
	ModeOnce RunMode = "once"
	// ModeScheduler keeps the process alive and triggers generation runs on a cron schedule
	ModeScheduler RunMode = "scheduler"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
