// Package codec converts NewsBoard records to and from the single-line,
// pipe-delimited text format used by the flat-file tables.
//
// Each record is one line. Fields are separated by '|' and list elements by
// ','. Text fields are escaped so that delimiters and line breaks inside data
// never split a record. Decoding is lenient: missing trailing fields take
// defaults, and a line that cannot be decoded is reported with ok == false
// instead of an error.
package codec
