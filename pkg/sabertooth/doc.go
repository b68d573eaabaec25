// Package sabertooth drives a Sabertooth 2x60 dual-motor controller
// over a serial line.
package sabertooth

// The Sabertooth speaks two serial command sets. This package implements
// the packetized protocol: fire-and-forget 4-byte frames protected by a
// 7-bit additive checksum, addressed so several controllers can share one
// bus. The plain-text protocol is a sibling implementation of the same
// Controller surface and lives outside this package.
//
// Producer: host application
// Consumer: Sabertooth firmware in packet serial mode
