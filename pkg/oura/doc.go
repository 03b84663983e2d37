// Package oura provides a read-only client for the Oura Ring API v2.
//
// The client fetches daily sleep, sleep period, activity, readiness, stress, and
// workout records for a single calendar date. Each collection is fetched
// independently; a date with no recorded data yields an absent record, not an error.
//
// Usage:
//
//	client := oura.New(oura.Config{AccessToken: token}, log)
//	data, err := client.DailyData(ctx, time.Now().AddDate(0, 0, -1))
//
// Error classification: invalid or expired tokens surface as ErrUnauthorized,
// network failures and unexpected statuses as ErrTransport, and malformed response
// bodies as ErrDecode. Match with errors.Is.
package oura
