package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Policy описывает лимит для одного маршрута: N запросов за окно.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// ParsePolicy разбирает строку лимита вида "10/minute" или "10 per minute".
func ParsePolicy(name, value string) (Policy, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return Policy{}, fmt.Errorf("rate limit is empty")
	}

	var parts []string
	if strings.Contains(raw, "/") {
		parts = strings.SplitN(raw, "/", 2)
	} else {
		parts = strings.SplitN(raw, " per ", 2)
	}
	if len(parts) != 2 {
		return Policy{}, fmt.Errorf("invalid rate limit %q", value)
	}

	limit, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || limit <= 0 {
		return Policy{}, fmt.Errorf("invalid rate limit count %q", value)
	}

	window, err := parseWindow(strings.TrimSpace(parts[1]))
	if err != nil {
		return Policy{}, fmt.Errorf("invalid rate limit window %q: %w", value, err)
	}

	return Policy{Name: name, Limit: limit, Window: window}, nil
}

func parseWindow(unit string) (time.Duration, error) {
	switch strings.ToLower(unit) {
	case "second":
		return time.Second, nil
	case "minute":
		return time.Minute, nil
	case "hour":
		return time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", unit)
	}
}
