// Package mmap provides read-only memory mapping of files.
//
// The dataset loader maps raw fixed-width key files instead of reading them
// through a buffer, so the kernel pages data in on demand.
package mmap
