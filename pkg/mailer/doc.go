// Package mailer provides email sending with markdown template rendering.
//
// The package separates delivery (via providers implementing Sender) from template
// rendering, so the transport can be swapped without touching the templates.
//
// Templates are markdown files with optional YAML frontmatter; the body is
// interpolated with text/template, converted to HTML, and wrapped in an HTML
// layout. The processed markdown doubles as the plain-text alternative of the
// message.
//
// Usage with the built-in SMTP provider:
//
//	sender, err := smtp.New(smtpCfg)
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender, mailer.NewRenderer(templatesFS), mailer.Config{})
//	err = m.Send(ctx, mailer.SendParams{
//		To:       "me@example.com",
//		Template: "daily_report.md",
//		Data:     view,
//	})
package mailer
