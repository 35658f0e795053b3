package repository

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout has a fixed width so stored timestamps sort lexically in
// chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		// Rows written by other clients may use plain RFC3339.
		return time.Parse(time.RFC3339Nano, s)
	}
	return t, nil
}

var orderColumns = map[string]bool{
	OrderLikes:     true,
	OrderCreatedAt: true,
	OrderID:        true,
}

// orderClause builds an ORDER BY clause from whitelisted columns.
func orderClause(order []OrderBy) (string, error) {
	if len(order) == 0 {
		return " ORDER BY created_at, id", nil
	}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		if !orderColumns[o.Field] {
			return "", fmt.Errorf("cannot order shared prompts by %q", o.Field)
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Field+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}
