package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ouramail/pkg/mailer"
	"github.com/dmitrymomot/ouramail/pkg/oura"
	"github.com/dmitrymomot/ouramail/pkg/report"
)

type fakeClient struct {
	data oura.DailyData
	err  error

	requestedDay time.Time
}

func (f *fakeClient) DailyData(ctx context.Context, day time.Time) (oura.DailyData, error) {
	f.requestedDay = day
	return f.data, f.err
}

type fakeMailer struct {
	err error

	calls  int
	params mailer.SendParams
}

func (f *fakeMailer) Send(ctx context.Context, params mailer.SendParams) error {
	f.calls++
	f.params = params
	return f.err
}

func TestTargetDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local), TargetDate(now))
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	client := &fakeClient{data: oura.DailyData{Day: "2024-05-01"}}
	m := &fakeMailer{}
	p := New(client, m, "me@example.com", nil)
	p.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local) }

	require.NoError(t, p.Run(context.Background()))

	require.Equal(t, 1, m.calls)
	require.Equal(t, "me@example.com", m.params.To)
	require.Equal(t, report.TemplateName, m.params.Template)
	require.Equal(t, "2024-05-01", client.requestedDay.Format("2006-01-02"))

	view, ok := m.params.Data.(report.Data)
	require.True(t, ok)
	require.Equal(t, "2024-05-01", view.Date)
}

func TestPipeline_Run_FetchFailure(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("provider unavailable")
	client := &fakeClient{err: fetchErr}
	m := &fakeMailer{}
	p := New(client, m, "me@example.com", nil)

	err := p.Run(context.Background())
	require.ErrorIs(t, err, fetchErr)
	require.Zero(t, m.calls, "no partial email must be sent on fetch failure")
}

func TestPipeline_Run_SendFailure(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("relay rejected message")
	client := &fakeClient{data: oura.DailyData{Day: "2024-05-01"}}
	m := &fakeMailer{err: sendErr}
	p := New(client, m, "me@example.com", nil)

	err := p.Run(context.Background())
	require.ErrorIs(t, err, sendErr)
}
