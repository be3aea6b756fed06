// Package selection resolves which declared outputs run for a step
// invocation.
//
// It owns the glob-style pattern matcher, the flat/step-scoped selection
// spec variants, the precedence rules that combine skip patterns, generate
// patterns, and per-output defaults, and the parser for the CLI
// "step:pattern" list syntax. Configuration and command-line layers hand
// their raw pattern lists to this package and receive a Selector that
// answers a single question: should this named output be generated right
// now.
package selection
