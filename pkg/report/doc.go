// Package report builds the daily email report from Oura records.
//
// Build converts one day's typed records into a template view model; the
// embedded markdown template and HTML layout are consumed by pkg/mailer's
// renderer. Build is pure: identical records always produce the identical view,
// and sections without data render as explicit "no data" placeholders.
package report
