// Package config loads bitdoctor configuration.
//
// Sources are layered, later ones overriding earlier ones: the embedded
// defaults, the user config file, the .bitdoctor.toml file in the start
// directory, BITDOCTOR_* environment variables, and command-line flags.
package config
