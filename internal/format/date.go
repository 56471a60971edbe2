package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var zhWeekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// FormatDate renders the calendar date of t for the given language. Chinese
// uses 2000年1月6日 星期四; anything else gets the English long form.
func FormatDate(t time.Time, tag language.Tag) string {
	if isChinese(tag) {
		return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), zhWeekdays[t.Weekday()])
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatDateTime renders t with its time of day and zone abbreviation.
func FormatDateTime(t time.Time, tag language.Tag) string {
	return FormatDate(t, tag) + " " + t.Format("15:04 MST")
}

// FormatMonth renders t's month and year, as used by the month slider.
func FormatMonth(t time.Time, tag language.Tag) string {
	if isChinese(tag) {
		return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
	}
	return t.Format("January 2006")
}

func isChinese(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "zh"
}
