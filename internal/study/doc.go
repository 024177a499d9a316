// Package study implements the in-memory study-session runners: the
// single-deck flip trainer and the multi-deck timed quiz. Runners hold only
// transient per-session state; persistence of completed sessions is the
// caller's responsibility.
package study
