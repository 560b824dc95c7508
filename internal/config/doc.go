// Package config loads application configuration from environment variables
// (COMPLAINT_* prefix) with an optional YAML overlay, and centralizes all
// file-system path resolution for the analyzer binary.
package config
