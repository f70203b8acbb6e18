package handler

import "strings"

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// normalizePage applies list defaults to missing pagination parameters
func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// optionalString returns nil for a blank query value
func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
