package utils

import (
	"strconv"
	"time"
)

// ParseDate converte YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseMetaTime aceita o formato de data/hora usado pela Graph API
func ParseMetaTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05-0700", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

// ParseFloat ignora valores vazios ou inválidos retornando zero
func ParseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func ParseInt(value string) int64 {
	if value == "" {
		return 0
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return int64(ParseFloat(value))
	}
	return i
}
