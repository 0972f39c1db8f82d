// Package builtin_templates contains the Appraise project template bundled into
// create-appraise for offline use.
package builtin_templates

import "embed"

// TemplatesFs mirrors the templates directory of the Appraise repository.
//
//go:embed all:templates
var TemplatesFs embed.FS

// Root is the root directory of TemplatesFs.
const Root = "templates"
