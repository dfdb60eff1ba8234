// Package prompt handles agent prompt templates: loading them from disk,
// expanding the per-agent {N} placeholders, and parsing the optional YAML
// front matter that customizes the printed Task invocations. Front matter
// is validated against an embedded JSON Schema.
package prompt
