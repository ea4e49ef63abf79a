// Package driver wires the pipeline phases together: load, tokenize,
// parse-and-lower, print. Commands call the driver, never the phases
// directly.
package driver
