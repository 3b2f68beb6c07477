// Package config resolves relmeta settings from the environment.
//
// Priority, highest first: command-line flags, environment variables
// (RELMETA_FORMAT, RELMETA_NO_COLOR, NO_COLOR, LOG_LEVEL), built-in defaults.
// There is no configuration file.
package config
