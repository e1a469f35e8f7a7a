package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedUID = errors.New("malformed calendar uid")

// CalendarUID собирает составной идентификатор календаря вида "{alias}_{id}".
func CalendarUID(alias string, id int64) string {
	return fmt.Sprintf("%s_%d", alias, id)
}

// ParseCalendarUID разбирает идентификатор по последнему подчеркиванию:
// alias сам может содержать подчеркивания, числовой id - нет.
func ParseCalendarUID(uid string) (string, int64, error) {
	delim := strings.LastIndex(uid, "_")
	if delim < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedUID, uid)
	}

	// только цифры после подчеркивания: ParseInt пропускает ведущий знак.
	suffix := uid[delim+1:]
	if suffix == "" {
		return "", 0, fmt.Errorf("%w: bad calendar id in %q", ErrMalformedUID, uid)
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return "", 0, fmt.Errorf("%w: bad calendar id in %q", ErrMalformedUID, uid)
		}
	}

	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad calendar id in %q", ErrMalformedUID, uid)
	}

	return uid[:delim], id, nil
}
