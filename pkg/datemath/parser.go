package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDue converts a due-date expression into a YYYY-MM-DD string relative
// to the clock's today. Accepted forms: "" (no due date), YYYY-MM-DD, today,
// tomorrow, yesterday, "in N days|weeks|months", "next <weekday>".
func (c *Clock) ParseDue(expr string) (string, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return "", nil
	}
	if IsDate(expr) {
		return expr, nil
	}

	now := c.Now()
	switch expr {
	case "today":
		return c.addDays(now, 0).Format(DateLayout), nil
	case "tomorrow":
		return c.addDays(now, 1).Format(DateLayout), nil
	case "yesterday":
		return c.addDays(now, -1).Format(DateLayout), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return c.parseInDuration(expr, now)
	}
	if strings.HasPrefix(expr, "next ") {
		return c.parseNextWeekday(expr, now)
	}

	return "", fmt.Errorf("unrecognized date expression: %q", expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (c *Clock) parseInDuration(expr string, now time.Time) (string, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return c.addDays(now, amount).Format(DateLayout), nil
	case strings.HasPrefix(unit, "week"):
		return c.addDays(now, amount*7).Format(DateLayout), nil
	default:
		anchor := c.addDays(now, 0)
		return anchor.AddDate(0, amount, 0).Format(DateLayout), nil
	}
}

// parseNextWeekday handles "next monday" etc. The same weekday means one week ahead.
func (c *Clock) parseNextWeekday(expr string, now time.Time) (string, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return "", fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return c.addDays(now, daysUntil).Format(DateLayout), nil
}
