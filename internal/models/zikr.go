package models

import (
	"fmt"
	"time"
)

// ZikrType is a countable category of zikr.
type ZikrType struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Arabic string `json:"arabic"`
	Custom bool   `json:"custom,omitempty"`
}

// DefaultZikrTypes are the five builtin types. They cannot be deleted.
func DefaultZikrTypes() []ZikrType {
	return []ZikrType{
		{ID: "subhanallah", Name: "СубханАллах", Arabic: "سُبْحَانَ اللَّهِ"},
		{ID: "alhamdulillah", Name: "Альхамдулиллах", Arabic: "الْحَمْدُ لِلَّهِ"},
		{ID: "allahuakbar", Name: "Аллаху Акбар", Arabic: "اللَّهُ أَكْبَرُ"},
		{ID: "astaghfirullah", Name: "Астагфируллах", Arabic: "أَسْتَغْفِرُ اللَّه"},
		{ID: "laillahaillallah", Name: "Ля иляха илля Ллах", Arabic: "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	}
}

// NewCustomTypeID generates an id for a user-added type. The "custom_"
// prefix keeps user ids out of the builtin id space.
func NewCustomTypeID(now time.Time) string {
	return fmt.Sprintf("custom_%d", now.UnixMilli())
}

// HistoryEntry records one calendar day's totals. Date is YYYY-MM-DD
// in the device's local time zone.
type HistoryEntry struct {
	Date   string         `json:"date"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// DayFormat is the calendar-day layout used for history dates,
// rollover detection and date-suffixed storage keys.
const DayFormat = "2006-01-02"

// Day renders t as a local calendar date.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}
