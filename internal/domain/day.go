package domain

import "time"

// Day represents a day with word count
type Day struct {
	Date      time.Time
	WordCount int
}

var monthNames = [...]string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns user-friendly date string
func (d Day) DisplayString() string {
	return d.DisplayStringAt(time.Now())
}

// DisplayStringAt renders the date relative to now
func (d Day) DisplayStringAt(now time.Time) string {
	date := d.Date

	if sameDay(date, now) {
		return "Сегодня"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Вчера"
	}

	return date.Format("2 ") + monthNames[date.Month()] + date.Format(" 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
