// Package mmfile provides platform-specific helpers for memory-mapping
// document files. On unix systems files are mapped read-only; elsewhere
// they are read into memory.
package mmfile
