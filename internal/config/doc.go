// Package config loads the settings of the sync client and the reference
// server.
//
// Both binaries read one [StructuredConfig]. Environment variables come
// first, command-line flags override them, and a JSON file (named by
// either) overrides both; whatever is still zero takes the built-in
// default. [GetClientConfig] and [GetServerConfig] then cut out and
// validate the part each binary needs.
package config
