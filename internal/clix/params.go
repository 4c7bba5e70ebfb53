package clix

import (
	"strings"

	"github.com/spf13/pflag"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads the limit/offset flags, clamping them to sane
// values for terminal output.
func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}, nil
}

// ParseKeywords splits the comma-separated keywords flag, dropping blanks.
func ParseKeywords(flags *pflag.FlagSet) ([]string, error) {
	raw, _ := flags.GetString("keywords")
	var keywords []string
	if raw != "" {
		for _, k := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(k)
			if trimmed != "" {
				keywords = append(keywords, trimmed)
			}
		}
	}
	return keywords, nil
}
