// Package ipc hosts the gRPC surface that drives the browser automation
// session. It is intentionally minimal so test runners can talk to browserd
// without waiting on a finalized protobuf schema; once the API stabilizes we
// can swap the JSON codec for generated stubs without changing callers.
package ipc
