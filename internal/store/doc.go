// Package store reads and writes phrase catalogs as YAML files.
//
// A file holds one catalog:
//
//	name: office
//	tiers:
//	  value:
//	    count: 4
//	    phrases: ["...", "..."]
//	  quality:
//	    phrases: [...]
//	  luxury:
//	    phrases: [...]
//
// count is optional. When present it must equal the number of phrases, so a
// hand-edited file cannot silently disagree with itself. Files are loaded
// once at start-up; the resulting phrase.Catalog is immutable. Writes go
// through a temp file and an atomic rename.
package store
