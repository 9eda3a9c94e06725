// Package config loads, normalizes, and validates subcast configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Every tunable of the subtitle pipeline
// (reading rate, pause weights, character budgets, speaker names, colours)
// lives here so downstream components receive explicit, validated values
// instead of consulting global state.
package config
