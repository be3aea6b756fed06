// Package outputs manages every file a pipeline step produces.
//
// It owns the declaration registry populated at startup, deterministic
// path construction (flat or structured by subject/session entities), the
// overwrite arbiter with its four policies, provenance sidecar generation,
// and the per-step Manager facade that step code calls to save figures,
// tables, arrays, JSON, text, and arbitrary objects. Selection decisions
// are delegated to the selection package; written artifacts are reported
// to an optional recorder for the derivatives ledger.
package outputs
