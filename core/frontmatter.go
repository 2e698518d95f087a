package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/karlseguin/typed"
	"github.com/samber/lo"
)

// frontMatter wraps the decoded metadata of a content file.
type frontMatter struct {
	typed.Typed
}

func newFrontMatter(data map[string]any) frontMatter {
	if data == nil {
		data = map[string]any{}
	}
	return frontMatter{typed.New(data)}
}

// text returns the first non-blank scalar value found under keys, as text.
func (f frontMatter) text(keys ...string) string {
	values := lo.Map(keys, func(key string, _ int) string {
		return scalar(f.Typed[key])
	})
	value, _ := lo.Coalesce(values...)
	return value
}

// date returns the date as written in the file.
func (f frontMatter) date(key string) string {
	return scalar(f.Typed[key])
}

// flag reports whether the value under key is truthy. Strings that do not
// parse as a boolean are true when not blank.
func (f frontMatter) flag(key string) bool {
	switch v := f.Typed[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		v = strings.TrimSpace(v)
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return v != ""
	default:
		s := scalar(v)
		return s != "" && s != "0"
	}
}

// list returns the values under key, in order, without blanks. A single
// value is split on commas.
func (f frontMatter) list(key string) []string {
	var values []string
	switch v := f.Typed[key].(type) {
	case []any:
		values = lo.Map(v, func(item any, _ int) string {
			return scalar(item)
		})
	case []string:
		values = v
	default:
		if s := scalar(v); s != "" {
			values = strings.Split(s, ",")
		}
	}

	values = lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	})

	return lo.Compact(values)
}

// scalar formats a decoded YAML scalar. Unquoted YAML timestamps may reach us
// as [time.Time], in which case they are formatted back. Maps, lists and nulls
// have no text.
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
