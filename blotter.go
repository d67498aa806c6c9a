// Package blotter turns a police department's published daily incident
// summary into structured incident records, stores them in SQLite and
// reports how often each incident nature occurred.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, goquery/). The text
// extraction rules live in extract/ and the run sequencing in ingest/.
package blotter
