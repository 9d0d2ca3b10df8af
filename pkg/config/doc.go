// Package config loads environment-driven configuration structs.
//
// Components declare their own Config struct with `env` tags and load it
// through Load or MustLoad. A .env file, when present, is read once per
// process before the first parse. Each config type is parsed once and
// cached, so independent components can load the same type cheaply.
package config
