package oura

import "time"

// SleepSummary is one day's sleep score with its contributor sub-scores.
type SleepSummary struct {
	Day          string            `json:"day"`
	Score        int               `json:"score"`
	Contributors SleepContributors `json:"contributors"`
}

// SleepContributors holds the seven fixed sleep score contributors (each 0-100).
type SleepContributors struct {
	DeepSleep   int `json:"deep_sleep"`
	Efficiency  int `json:"efficiency"`
	Latency     int `json:"latency"`
	REMSleep    int `json:"rem_sleep"`
	Restfulness int `json:"restfulness"`
	Timing      int `json:"timing"`
	TotalSleep  int `json:"total_sleep"`
}

// SleepPeriod is one recorded sleep session. A day can have several (naps); the
// main overnight session has type "long_sleep".
type SleepPeriod struct {
	Day                string    `json:"day"`
	Type               string    `json:"type"`
	BedtimeStart       time.Time `json:"bedtime_start"`
	BedtimeEnd         time.Time `json:"bedtime_end"`
	TimeInBed          int       `json:"time_in_bed"`
	TotalSleepDuration int       `json:"total_sleep_duration"`
	Latency            int       `json:"latency"`
	DeepSleepDuration  int       `json:"deep_sleep_duration"`
	REMSleepDuration   int       `json:"rem_sleep_duration"`
	LightSleepDuration int       `json:"light_sleep_duration"`
	AverageHeartRate   float64   `json:"average_heart_rate"`
	LowestHeartRate    int       `json:"lowest_heart_rate"`
	AverageHRV         int       `json:"average_hrv"`
	AverageBreath      float64   `json:"average_breath"`
	RestlessPeriods    int       `json:"restless_periods"`
}

// ActivitySummary is one day's activity score with its metrics and contributors.
type ActivitySummary struct {
	Day                string               `json:"day"`
	Score              int                  `json:"score"`
	ActiveCalories     int                  `json:"active_calories"`
	AverageMETMinutes  float64              `json:"average_met_minutes"`
	Steps              int                  `json:"steps"`
	LowActivityTime    int                  `json:"low_activity_time"`
	MediumActivityTime int                  `json:"medium_activity_time"`
	HighActivityTime   int                  `json:"high_activity_time"`
	Contributors       ActivityContributors `json:"contributors"`
}

// ActivityContributors holds the six fixed activity score contributors (each 0-100).
type ActivityContributors struct {
	MeetDailyTargets  int `json:"meet_daily_targets"`
	MoveEveryHour     int `json:"move_every_hour"`
	RecoveryTime      int `json:"recovery_time"`
	StayActive        int `json:"stay_active"`
	TrainingFrequency int `json:"training_frequency"`
	TrainingVolume    int `json:"training_volume"`
}

// ReadinessSummary is one day's readiness score with recovery metrics.
type ReadinessSummary struct {
	Day                  string                `json:"day"`
	Score                int                   `json:"score"`
	TemperatureDeviation float64               `json:"temperature_deviation"`
	Contributors         ReadinessContributors `json:"contributors"`
}

// ReadinessContributors holds the readiness score contributors (each 0-100).
type ReadinessContributors struct {
	ActivityBalance     int `json:"activity_balance"`
	BodyTemperature     int `json:"body_temperature"`
	HRVBalance          int `json:"hrv_balance"`
	PreviousDayActivity int `json:"previous_day_activity"`
	PreviousNight       int `json:"previous_night"`
	RecoveryIndex       int `json:"recovery_index"`
	RestingHeartRate    int `json:"resting_heart_rate"`
	SleepBalance        int `json:"sleep_balance"`
}

// StressSummary is one day's stress and recovery time split.
type StressSummary struct {
	Day          string `json:"day"`
	StressHigh   int    `json:"stress_high"`
	RecoveryHigh int    `json:"recovery_high"`
	DaySummary   string `json:"day_summary"`
}

// Workout is one logged workout session.
type Workout struct {
	Day           string    `json:"day"`
	Activity      string    `json:"activity"`
	Calories      float64   `json:"calories"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// DailyData aggregates everything the provider reported for one calendar date.
// Each section is independently present or absent: a nil summary means the
// provider had no record for that date (ring not worn, collection not synced).
type DailyData struct {
	Day       string
	Sleep     *SleepSummary
	Periods   []SleepPeriod
	Activity  *ActivitySummary
	Readiness *ReadinessSummary
	Stress    *StressSummary
	Workouts  []Workout
}
