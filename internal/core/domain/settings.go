package domain

import (
	"fmt"
	"time"
)

// Date format keys understood by FormatDate.
const (
	DateFormatDayMonthYear = "dd/MM/yyyy"
	DateFormatMonthDayYear = "MM/dd/yyyy"
	DateFormatISO          = "yyyy-MM-dd"
)

// DateFormatOption describes a selectable date format.
type DateFormatOption struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Example string `json:"example"`
}

// DateFormats lists the selectable date formats, default first.
var DateFormats = []DateFormatOption{
	{Key: DateFormatDayMonthYear, Label: "dd/MM/yyyy (31/12/2025)", Example: "31/12/2025"},
	{Key: DateFormatMonthDayYear, Label: "MM/dd/yyyy (12/31/2025)", Example: "12/31/2025"},
	{Key: DateFormatISO, Label: "yyyy-MM-dd (2025-12-31)", Example: "2025-12-31"},
}

// IsDateFormat reports whether key names a known date format.
func IsDateFormat(key string) bool {
	for _, f := range DateFormats {
		if f.Key == key {
			return true
		}
	}
	return false
}

// FormatDate renders t with the given format key. Unknown keys use dd/MM/yyyy.
// The zero time renders as an empty string.
func FormatDate(t time.Time, key string) string {
	if t.IsZero() {
		return ""
	}
	day := fmt.Sprintf("%02d", t.Day())
	month := fmt.Sprintf("%02d", int(t.Month()))
	year := fmt.Sprintf("%d", t.Year())
	switch key {
	case DateFormatMonthDayYear:
		return month + "/" + day + "/" + year
	case DateFormatISO:
		return year + "-" + month + "-" + day
	default:
		return day + "/" + month + "/" + year
	}
}

// MoneyFormat is a digit grouping preset.
type MoneyFormat struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Thousand string `json:"thousand"`
	Decimal  string `json:"decimal"`
}

// MoneyFormats lists the grouping presets, default first.
var MoneyFormats = []MoneyFormat{
	{Key: "space", Label: "1 234 567 (space separated)", Thousand: " ", Decimal: ","},
	{Key: "dot", Label: "1.234.567 (dot separated)", Thousand: ".", Decimal: ","},
	{Key: "comma", Label: "1,234,567 (comma separated)", Thousand: ",", Decimal: "."},
}

// MaxMoneyDecimalDigits bounds the user-selectable fraction digits.
const MaxMoneyDecimalDigits = 8

// MoneyFormatSettings is a grouping preset plus the number of fraction digits to show.
type MoneyFormatSettings struct {
	MoneyFormat
	DecimalDigits int `json:"decimalDigits"`
}

// FindMoneyFormat returns the preset with key, or false.
func FindMoneyFormat(key string) (MoneyFormat, bool) {
	for _, f := range MoneyFormats {
		if f.Key == key {
			return f, true
		}
	}
	return MoneyFormat{}, false
}

// DefaultMoneyFormatSettings returns the settings used when nothing is stored.
func DefaultMoneyFormatSettings() MoneyFormatSettings {
	return MoneyFormatSettings{MoneyFormat: MoneyFormats[0]}
}
