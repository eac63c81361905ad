// Package factory provides a small generic registry used to instantiate
// modules from configuration. Modules are defined by a type string and a map
// of raw settings. Factories decode the settings into typed structs and return
// the concrete implementation. The analytics engine uses it for metrics sinks
// and route keyers so alternative implementations can be selected from the
// configuration file without touching the algorithms.
package factory
