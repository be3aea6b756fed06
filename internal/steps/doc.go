// Package steps contains the built-in pipeline steps: dataset intake and
// a summary analysis. They double as the reference for how step code
// declares outputs, guards expensive work behind selection checks, and
// saves artifacts through the output manager.
package steps
