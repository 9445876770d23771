// Package doccover provides a checklist coverage checker. It parses an
// enumerated checklist into categorized items, scans a corpus of free-text
// documents for evidence that each item is addressed, and aggregates the
// results into per-category statistics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., bloom/, sqlite/, coverage/).
package doccover
