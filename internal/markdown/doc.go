// Package markdown ingests case studies written as Markdown files with YAML
// frontmatter and turns them into portfolio projects. Discovery walks a
// content directory, locale subdirectories map to translations.
package markdown
