package meetup

import (
	"strings"
	"unicode/utf8"
)

const maxTitleLength = 200

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > maxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}
