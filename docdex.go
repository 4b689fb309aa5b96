// Package docdex turns a seed link manifest into a locally queryable,
// relevance-ranked text corpus. It fetches manifest links through a
// conditional-revalidation content cache, optionally expands markdown link
// graphs breadth-first under depth and document budgets, splits long companion
// documents into addressable sections, and ranks everything with an
// incremental BM25 index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, bm25/).
package docdex
