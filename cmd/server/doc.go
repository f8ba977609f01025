// Command server runs the calc HTTP service.
//
// Configuration comes from environment variables (PORT, HOST, LOG_LEVEL,
// LOG_DEV, RATE_LIMIT_*); see the config package for defaults.
package main
