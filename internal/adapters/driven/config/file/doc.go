// Package file stores roster settings in a TOML file under the config
// directory (default ~/.roster/config.toml).
package file
