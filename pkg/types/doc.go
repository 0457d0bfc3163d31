// Package types defines the domain entities, configuration, and standard
// errors shared by the ReinaManager storage and backup subsystems.
package types
