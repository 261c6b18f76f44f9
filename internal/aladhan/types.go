package aladhan

import "time"

// Timings holds one day's prayer times as local "HH:MM" strings.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Ordered returns the prayers in chronological order with display names.
func (t Timings) Ordered() []Prayer {
	return []Prayer{
		{Name: "Fajr", Arabic: "الفجر", Time: t.Fajr},
		{Name: "Sunrise", Arabic: "الشروق", Time: t.Sunrise},
		{Name: "Dhuhr", Arabic: "الظهر", Time: t.Dhuhr},
		{Name: "Asr", Arabic: "العصر", Time: t.Asr},
		{Name: "Maghrib", Arabic: "المغرب", Time: t.Maghrib},
		{Name: "Isha", Arabic: "العشاء", Time: t.Isha},
	}
}

// Prayer is one named prayer time.
type Prayer struct {
	Name   string
	Arabic string
	Time   string // "HH:MM"
}

// HijriDate is a date in the Islamic calendar.
type HijriDate struct {
	Day       int
	Month     int
	MonthEn   string
	MonthAr   string
	Year      int
	Weekday   string
	WeekdayAr string
}

// DayData bundles everything the prayers surface needs for one day.
// Partial results: a failed qibla fetch leaves Qibla at zero with Err set.
type DayData struct {
	FetchedAt time.Time
	Timings   Timings
	Hijri     HijriDate
	Qibla     float64 // degrees from north
	Err       error   // first error encountered, nil when complete
}

// timingsResponse mirrors the /v1/timingsByCity payload, reduced to the
// fields we consume.
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings Timings `json:"timings"`
		Date    struct {
			Hijri hijriPayload `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

type hijriPayload struct {
	Day   string `json:"day"`
	Year  string `json:"year"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
		Ar     string `json:"ar"`
	} `json:"month"`
	Weekday struct {
		En string `json:"en"`
		Ar string `json:"ar"`
	} `json:"weekday"`
}

type qiblaResponse struct {
	Code int `json:"code"`
	Data struct {
		Direction float64 `json:"direction"`
	} `json:"data"`
}

type gToHResponse struct {
	Code int `json:"code"`
	Data struct {
		Hijri hijriPayload `json:"hijri"`
	} `json:"data"`
}
