// Package config manages user-level settings stored at ~/.swarmgen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default agent count, template path, and output directory used by spawn.
package config
