// Package output renders release metadata for consumption by automation.
// The default "env" format prints one key=value line per field, which shell
// steps can append to an environment or step-output file. The structured
// formats (json, yaml, toml) keep the same field order.
package output
