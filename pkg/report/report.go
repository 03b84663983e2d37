package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/ouramail/pkg/oura"
)

// Data is the template view model for one day's report.
type Data struct {
	Date      string // YYYY-MM-DD
	DateLabel string // "May 1"
	Sleep     *SleepSection
	Periods   []PeriodView
	Readiness *ReadinessSection
	Activity  *ActivitySection
	Stress    *StressSection
	Workouts  []WorkoutLine
}

// Contributor is one named sub-score of a summary.
type Contributor struct {
	Label string
	Value int
}

// SleepSection carries the daily sleep score and its contributors.
type SleepSection struct {
	Score        int
	Contributors []Contributor
}

// PeriodView is one sleep session with physiology summarized per period.
type PeriodView struct {
	Label      string // "Main sleep", "Late nap", ...
	Bedtime    string // "2:01 AM to 9:41 AM"
	TimeInBed  string
	TotalSleep string
	LatencyMin int
	Deep       string
	REM        string
	Light      string
	AvgHR      string
	LowestHR   int
	AvgHRV     int
	AvgBreath  string
	Restless   int
}

// ReadinessSection carries the daily readiness score and recovery metrics.
type ReadinessSection struct {
	Score         int
	TempDeviation string
	Contributors  []Contributor
}

// ActivitySection carries the daily activity score and movement metrics.
type ActivitySection struct {
	Score          int
	Steps          string
	ActiveCalories int
	AvgMETMinutes  string
	LowActivity    string
	MediumActivity string
	HighActivity   string
	Contributors   []Contributor
}

// StressSection carries the daily stress and recovery time split.
type StressSection struct {
	DaySummary   string
	StressTime   string
	RecoveryTime string
}

// WorkoutLine is one logged workout.
type WorkoutLine struct {
	Activity string
	Duration string
	Calories string
}

// Build converts one day's records into the template view model. Absent
// records leave the matching section nil; the template renders a placeholder.
func Build(day time.Time, data oura.DailyData) Data {
	out := Data{
		Date:      day.Format("2006-01-02"),
		DateLabel: day.Format("Jan 2"),
	}

	if s := data.Sleep; s != nil {
		out.Sleep = &SleepSection{
			Score: s.Score,
			Contributors: []Contributor{
				{"deep sleep", s.Contributors.DeepSleep},
				{"efficiency", s.Contributors.Efficiency},
				{"latency", s.Contributors.Latency},
				{"REM sleep", s.Contributors.REMSleep},
				{"restfulness", s.Contributors.Restfulness},
				{"timing", s.Contributors.Timing},
				{"total sleep", s.Contributors.TotalSleep},
			},
		}
	}

	for _, p := range orderPeriods(data.Periods) {
		out.Periods = append(out.Periods, PeriodView{
			Label:      periodLabel(p.Type),
			Bedtime:    fmt.Sprintf("%s to %s", clock(p.BedtimeStart), clock(p.BedtimeEnd)),
			TimeInBed:  duration(p.TimeInBed),
			TotalSleep: duration(p.TotalSleepDuration),
			LatencyMin: p.Latency / 60,
			Deep:       duration(p.DeepSleepDuration),
			REM:        duration(p.REMSleepDuration),
			Light:      duration(p.LightSleepDuration),
			AvgHR:      fmt.Sprintf("%.1f", p.AverageHeartRate),
			LowestHR:   p.LowestHeartRate,
			AvgHRV:     p.AverageHRV,
			AvgBreath:  fmt.Sprintf("%.1f", p.AverageBreath),
			Restless:   p.RestlessPeriods,
		})
	}

	if r := data.Readiness; r != nil {
		out.Readiness = &ReadinessSection{
			Score:         r.Score,
			TempDeviation: fmt.Sprintf("%+.2f°C", r.TemperatureDeviation),
			Contributors: []Contributor{
				{"activity balance", r.Contributors.ActivityBalance},
				{"body temperature", r.Contributors.BodyTemperature},
				{"HRV balance", r.Contributors.HRVBalance},
				{"previous day activity", r.Contributors.PreviousDayActivity},
				{"previous night", r.Contributors.PreviousNight},
				{"recovery index", r.Contributors.RecoveryIndex},
				{"resting heart rate", r.Contributors.RestingHeartRate},
				{"sleep balance", r.Contributors.SleepBalance},
			},
		}
	}

	if a := data.Activity; a != nil {
		out.Activity = &ActivitySection{
			Score:          a.Score,
			Steps:          strconv.Itoa(a.Steps),
			ActiveCalories: a.ActiveCalories,
			AvgMETMinutes:  fmt.Sprintf("%.1f", a.AverageMETMinutes),
			LowActivity:    duration(a.LowActivityTime),
			MediumActivity: duration(a.MediumActivityTime),
			HighActivity:   duration(a.HighActivityTime),
			Contributors: []Contributor{
				{"meet daily targets", a.Contributors.MeetDailyTargets},
				{"move every hour", a.Contributors.MoveEveryHour},
				{"recovery time", a.Contributors.RecoveryTime},
				{"stay active", a.Contributors.StayActive},
				{"training frequency", a.Contributors.TrainingFrequency},
				{"training volume", a.Contributors.TrainingVolume},
			},
		}
	}

	if st := data.Stress; st != nil {
		out.Stress = &StressSection{
			DaySummary:   strings.ReplaceAll(st.DaySummary, "_", " "),
			StressTime:   duration(st.StressHigh),
			RecoveryTime: duration(st.RecoveryHigh),
		}
	}

	for _, w := range data.Workouts {
		out.Workouts = append(out.Workouts, WorkoutLine{
			Activity: w.Activity,
			Duration: duration(int(w.EndDatetime.Sub(w.StartDatetime).Seconds())),
			Calories: fmt.Sprintf("%.0f", w.Calories),
		})
	}

	return out
}

// orderPeriods puts the main overnight session first, keeping the rest in
// provider order.
func orderPeriods(periods []oura.SleepPeriod) []oura.SleepPeriod {
	ordered := make([]oura.SleepPeriod, 0, len(periods))
	for _, p := range periods {
		if p.Type == "long_sleep" {
			ordered = append(ordered, p)
		}
	}
	for _, p := range periods {
		if p.Type != "long_sleep" {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// periodLabel maps a provider period type to a display heading.
func periodLabel(periodType string) string {
	if periodType == "long_sleep" {
		return "Main sleep"
	}
	label := strings.ReplaceAll(periodType, "_", " ")
	if label == "" {
		return "Sleep period"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// duration renders seconds as "7h 40m", or "40m" under one hour.
func duration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// clock renders a timestamp as "2:01 AM" in its own zone.
func clock(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("3:04 PM")
}
