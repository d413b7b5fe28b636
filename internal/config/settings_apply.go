package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SettingKeys lists the keys accepted by Get and Set, in display order.
var SettingKeys = []string{
	"barrier.attempts",
	"barrier.interval",
	"prefix-length",
	"log.level",
	"log.format",
}

// Get returns the display value of one setting.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "barrier.attempts":
		return strconv.Itoa(s.Barrier.Attempts), nil
	case "barrier.interval":
		return s.Barrier.Interval.String(), nil
	case "prefix-length":
		return strconv.Itoa(s.PrefixLength), nil
	case "log.level":
		return s.Log.Level, nil
	case "log.format":
		return s.Log.Format, nil
	default:
		return "", unknownKey(key)
	}
}

// Set parses value and stores it under key. The result is validated, and
// on failure the settings are left unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	value = strings.TrimSpace(value)

	switch key {
	case "barrier.attempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.Barrier.Attempts = n
	case "barrier.interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.Barrier.Interval = d
	case "prefix-length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.PrefixLength = n
	case "log.level":
		next.Log.Level = strings.ToLower(value)
	case "log.format":
		next.Log.Format = strings.ToLower(value)
	default:
		return unknownKey(key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown setting key %q (supported: %s)", key, strings.Join(SettingKeys, ", "))
}
