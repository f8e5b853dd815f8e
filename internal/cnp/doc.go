// Package cnp implements the validation pipeline for the Romanian personal
// numeric code (Cod Numeric Personal).
//
// A CNP is 13 decimal digits laid out as:
//
//	S YY MM DD JJ NNN C
//	│ │  │  │  │  │   └── control digit (weighted checksum of the first 12)
//	│ │  │  │  │  └────── sequence number, not validated
//	│ │  │  │  └───────── county code, 52 at most
//	│ │  │  └──────────── day of birth
//	│ │  └─────────────── month of birth
//	│ └────────────────── year of birth within the century
//	└──────────────────── sex and century
//
// # Domain Purity
//
// Every function in this package is pure: no I/O, no clock, no shared mutable
// state. The lookup tables are fixed arrays that are only ever read, so all
// functions are safe for concurrent use.
//
// Check reports the first failing stage as a wrapped sentinel error so that
// internal callers can observe why a code was rejected. The public surface in
// pkg/cnp collapses every failure to false.
package cnp
