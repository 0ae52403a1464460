// Package webmark converts web pages into ranked markdown digests.
// Given a URL it renders the page in a headless browser, captures the
// images, links, and code blocks before any cleanup can delete them,
// strips boilerplate from the DOM, scores the remaining content-bearing
// elements by importance, and composes a markdown document from the
// result. Failures never escape the analyzer boundary; callers receive
// a Report with a success flag instead of an error.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package webmark
