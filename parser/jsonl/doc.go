// Package jsonl parses JSON Lines data into rtab Tables. This parser uses
// https://github.com/tidwall/gjson to process data, and supports schema
// column names formatted as gjson paths.
package jsonl
