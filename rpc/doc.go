// Package rpc provides definition and implementation of the gRPC server of the
// rpow node which accepts proof-of-work submissions against its difficulty state
// and serves the current target to prospectors.
package rpc
