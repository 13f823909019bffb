// Package config loads CLI settings from the environment, reading a .env
// file first when one is present.
package config
