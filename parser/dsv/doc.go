// Package dsv parses delimiter-separated values data into rtab Tables. The
// parser is schema-driven: the caller supplies an Arrow schema and every
// record is coerced to it, with no type inference.
package dsv
