// Package format names the document formats the neon command reads and
// writes, and converts between them and the values of package value.
//
// NEON documents decode through package parse. JSON and YAML documents
// decode keeping the order of object keys, so that converting them to NEON
// is stable.
package format
