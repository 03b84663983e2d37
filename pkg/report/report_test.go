package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ouramail/pkg/mailer"
	"github.com/dmitrymomot/ouramail/pkg/oura"
)

func parseDay(t *testing.T, date string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return day
}

func sampleData() oura.DailyData {
	return oura.DailyData{
		Day: "2024-05-01",
		Sleep: &oura.SleepSummary{
			Day:   "2024-05-01",
			Score: 82,
			Contributors: oura.SleepContributors{
				DeepSleep:   70,
				Efficiency:  90,
				Latency:     85,
				REMSleep:    75,
				Restfulness: 80,
				Timing:      88,
				TotalSleep:  78,
			},
		},
		Periods: []oura.SleepPeriod{{
			Day:                "2024-05-01",
			Type:               "long_sleep",
			BedtimeStart:       time.Date(2024, 5, 1, 2, 1, 0, 0, time.UTC),
			BedtimeEnd:         time.Date(2024, 5, 1, 9, 41, 0, 0, time.UTC),
			TimeInBed:          27600,
			TotalSleepDuration: 27600,
			Latency:            480,
			DeepSleepDuration:  5400,
			REMSleepDuration:   6300,
			LightSleepDuration: 13500,
			AverageHeartRate:   58.5,
			LowestHeartRate:    49,
			AverageHRV:         62,
			AverageBreath:      14.2,
			RestlessPeriods:    3,
		}},
		Activity: &oura.ActivitySummary{
			Day:            "2024-05-01",
			Score:          65,
			ActiveCalories: 450,
			Steps:          8000,
			Contributors: oura.ActivityContributors{
				MeetDailyTargets:  60,
				MoveEveryHour:     95,
				RecoveryTime:      100,
				StayActive:        70,
				TrainingFrequency: 50,
				TrainingVolume:    55,
			},
		},
	}
}

func renderReport(t *testing.T, day time.Time, data oura.DailyData) *mailer.RenderResult {
	t.Helper()
	r := mailer.NewRenderer(Templates())
	result, err := r.Render("base.html", TemplateName, Build(day, data))
	require.NoError(t, err)
	return result
}

func TestBuild_SleepContributorLabels(t *testing.T) {
	t.Parallel()

	view := Build(parseDay(t, "2024-05-01"), sampleData())

	require.NotNil(t, view.Sleep)
	labels := make([]string, 0, len(view.Sleep.Contributors))
	for _, c := range view.Sleep.Contributors {
		labels = append(labels, c.Label)
	}
	require.Equal(t, []string{
		"deep sleep", "efficiency", "latency", "REM sleep",
		"restfulness", "timing", "total sleep",
	}, labels)
}

func TestBuild_ActivityContributorLabels(t *testing.T) {
	t.Parallel()

	view := Build(parseDay(t, "2024-05-01"), sampleData())

	require.NotNil(t, view.Activity)
	labels := make([]string, 0, len(view.Activity.Contributors))
	for _, c := range view.Activity.Contributors {
		labels = append(labels, c.Label)
	}
	require.Equal(t, []string{
		"meet daily targets", "move every hour", "recovery time",
		"stay active", "training frequency", "training volume",
	}, labels)
}

func TestBuild_PeriodFormatting(t *testing.T) {
	t.Parallel()

	view := Build(parseDay(t, "2024-05-01"), sampleData())

	require.Len(t, view.Periods, 1)
	p := view.Periods[0]
	require.Equal(t, "Main sleep", p.Label)
	require.Equal(t, "2:01 AM to 9:41 AM", p.Bedtime)
	require.Equal(t, "7h 40m", p.TimeInBed)
	require.Equal(t, 8, p.LatencyMin)
	require.Equal(t, "1h 30m", p.Deep)
	require.Equal(t, "58.5", p.AvgHR)
}

func TestBuild_MainPeriodFirst(t *testing.T) {
	t.Parallel()

	data := sampleData()
	nap := data.Periods[0]
	nap.Type = "late_nap"
	data.Periods = []oura.SleepPeriod{nap, sampleData().Periods[0]}

	view := Build(parseDay(t, "2024-05-01"), data)

	require.Len(t, view.Periods, 2)
	require.Equal(t, "Main sleep", view.Periods[0].Label)
	require.Equal(t, "Late nap", view.Periods[1].Label)
}

func TestRender_Scenario(t *testing.T) {
	t.Parallel()

	result := renderReport(t, parseDay(t, "2024-05-01"), sampleData())

	require.Contains(t, result.HTML, "82")
	require.Contains(t, result.HTML, "8000")
	require.Contains(t, result.HTML, "deep sleep: 70")
	require.Contains(t, result.Text, "Steps: 8000")
	require.Equal(t, "Oura Daily Report — {{.Date}}", result.Metadata["Subject"])
}

func TestRender_NoData(t *testing.T) {
	t.Parallel()

	result := renderReport(t, parseDay(t, "2024-05-02"), oura.DailyData{Day: "2024-05-02"})

	require.Contains(t, result.HTML, "No sleep data available")
	require.Contains(t, result.HTML, "No readiness data available")
	require.Contains(t, result.HTML, "No activity data available")
	require.Contains(t, result.HTML, "No stress data available")
	require.Contains(t, result.HTML, "None logged")
	require.NotContains(t, result.HTML, "Score:")
	require.NotRegexp(t, `Sleep: \d`, result.HTML)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	day := parseDay(t, "2024-05-01")
	first := renderReport(t, day, sampleData())
	second := renderReport(t, day, sampleData())

	require.Equal(t, first.HTML, second.HTML)
	require.Equal(t, first.Text, second.Text)
}

func TestRender_PartialData(t *testing.T) {
	t.Parallel()

	data := sampleData()
	data.Sleep = nil
	data.Periods = nil

	result := renderReport(t, parseDay(t, "2024-05-01"), data)

	require.Contains(t, result.HTML, "No sleep data available")
	require.Contains(t, result.HTML, "Steps: 8000")
}

func TestDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "7h 40m", duration(27600))
	require.Equal(t, "40m", duration(2400))
	require.Equal(t, "0m", duration(0))
	require.Equal(t, "1h 0m", duration(3600))
}
