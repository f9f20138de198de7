// Package server runs the local gateway's HTTP listener.
//
// It owns the listener lifecycle: startup, OS signal handling, and graceful
// shutdown.
package server
