// Package errors defines the structured error type shared by the codec,
// persistence and computation layers.
//
// Every failure carries a Phase (where it happened) and a Kind (what went
// wrong), so callers can match errors with errors.Is against a prototype
// instead of parsing messages. Table and tape level violations are not
// errors at all: those operations absorb bad arguments silently and the
// error taxonomy here only covers failures that must reach the caller.
package errors
