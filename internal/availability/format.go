package availability

import (
	"fmt"
	"time"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatKoreanDate renders a date the way the storefront prints it: "2026년 10월 16일 (금)".
func FormatKoreanDate(date time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 (%s)", date.Year(), int(date.Month()), date.Day(), koreanWeekdays[date.Weekday()])
}
