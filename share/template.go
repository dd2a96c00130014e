package share

import (
	"fmt"
	"html/template"
	"math"

	"github.com/dustin/go-humanize"
)

var (
	TemplateFuncMap = template.FuncMap{
		"fn": func(value interface{}) string {
			if e, ok := value.(int); ok {
				return humanize.Comma(int64(e))
			}
			return ""
		},
		"ft":     FormatTime,
		"plural": Plural,
	}
)

// FormatTime renders a run time in seconds as m:ss.mmm.
func FormatTime(seconds float32) string {
	if seconds < 0 || math.IsNaN(float64(seconds)) || math.IsInf(float64(seconds), 0) {
		return "-"
	}

	ms := int64(math.Round(float64(seconds) * 1000))
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

func Plural(n int, singular string, plural string) string {
	if n == 1 {
		return humanize.Comma(int64(n)) + " " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}
