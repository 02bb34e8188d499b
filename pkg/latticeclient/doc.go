// Package latticeclient provides the main entry point for creating Lattice
// API clients. It validates and normalizes the configuration and wires the
// transport, authorization, and resource modules together.
package latticeclient
