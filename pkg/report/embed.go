package report

import (
	"embed"
	"io/fs"
)

// TemplateName is the markdown template the daily report is rendered from.
const TemplateName = "daily_report.md"

//go:embed templates
var embedded embed.FS

// Templates returns the embedded template filesystem, rooted for
// mailer.NewRenderer (templates at the root, layouts under "layouts").
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
