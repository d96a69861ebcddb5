// Package qdi is a qualified dependency resolution library for Go.
//
// The repository is organized as:
//
//   - di: the resolution kernel — token/qualifier bindings, provider
//     strategies, the per-call request chain, and typed accessors
//   - engine: a sample consumer that obtains its configuration through a
//     factory binding with one level of indirection, plus YAML presets
//
// The point of the design is isolation: a kernel is shared and long-lived,
// yet resolutions under different qualifier names never leak state into
// each other, even across factories that are invoked long after the
// resolution that produced them. See the di package docs for how the
// request chain and qualifier snapshots enforce that.
package qdi
