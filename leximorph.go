// Package leximorph provides article extraction, translation and export.
// It fetches web articles, extracts their main content into a structured
// document model, translates every textual leaf, and exports the result as
// Word, PDF, Markdown, HTML or JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package leximorph
