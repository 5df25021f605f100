package view

import (
	"strconv"
	"strings"
)

// IndexCell renders the 1-based row number for an absolute record index.
func IndexCell(abs int) string { return strconv.Itoa(abs + 1) }

func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// DateCell shows the day part of an ISO timestamp field.
func DateCell(r Record, key string) string {
	v := r.Str(key)
	if i := strings.Index(v, "T"); i > 0 {
		return v[:i]
	}
	return v
}
