package application

import (
	"math"
	"strconv"
	"time"
)

const secondsPerDay = 60 * 60 * 24

// NormalizeDueDate moves a due date stored at exactly midnight to 23:59:59 of
// the same day, so a deadline is not treated as passed on its own day.
// Other times, and nil, are returned unchanged.
func NormalizeDueDate(due *time.Time) *time.Time {
	if due == nil {
		return nil
	}
	if due.Hour() != 0 || due.Minute() != 0 || due.Second() != 0 {
		return due
	}

	endOfDay := time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 59, 0, due.Location())
	return &endOfDay
}

// OverdueDays returns the overdue-response and overdue-review day counts for
// an assignment, as report cell values. A blank value means not overdue.
//
// Without a response only one of the two is reported, with the response
// deadline taking precedence. Once the reviewer has responded only the review
// deadline counts, and a completed review is never overdue. A nil due date
// never counts as passed.
func OverdueDays(confirmed, completed, responseDue, reviewDue *time.Time, now time.Time) (overdueResponse, overdueReview string) {
	switch {
	case confirmed == nil:
		if passed(responseDue, now) {
			return daysLate(*responseDue, now), ""
		}
		if passed(reviewDue, now) {
			return "", daysLate(*reviewDue, now)
		}
	case completed == nil:
		if passed(reviewDue, now) {
			return "", daysLate(*reviewDue, now)
		}
	}

	return "", ""
}

func passed(due *time.Time, now time.Time) bool {
	return due != nil && due.Unix() < now.Unix()
}

// daysLate rounds the elapsed whole seconds to the nearest day, halves away
// from zero.
func daysLate(due, now time.Time) string {
	diff := float64(now.Unix() - due.Unix())
	return strconv.FormatInt(int64(math.Round(diff/secondsPerDay)), 10)
}
