// Package parser parses riot component templates.
//
// A template is an HTML-like document with a single root tag. Text and
// attribute values may contain JavaScript expressions between brackets,
// "{" and "}" unless configured otherwise. The root may hold one inline
// <style> and one inline <script>, which are returned apart from the
// template.
//
// Parse scans the template into raw nodes and builds a tree from them.
// Callers that need a different shape can pass their own Builder to
// ParseWith. Errors are *loc.DiagnosticMessage values that render as
// "[line,col]: message".
package parser
