package mapper

import (
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// DateFormatter renders [models.Post.Time] values for display and produces
// the current time in the stored layout.
type DateFormatter struct {
	layout   string
	location *time.Location
	now      func() time.Time
}

// NewDateFormatter returns a formatter that displays times with layout in
// the local time zone.
func NewDateFormatter(layout string) *DateFormatter {
	return &DateFormatter{
		layout:   layout,
		location: time.Local,
		now:      time.Now,
	}
}

// WithClock returns a copy of f reading the current time from now and
// displaying in loc.
func (f *DateFormatter) WithClock(now func() time.Time, loc *time.Location) *DateFormatter {
	cp := *f
	cp.now = now
	cp.location = loc
	return &cp
}

// NowAsTZ returns the current UTC time in [models.TimeLayoutTZ].
func (f *DateFormatter) NowAsTZ() string {
	return f.now().UTC().Format(models.TimeLayoutTZ)
}

// TZToDisplay converts a stored time to the display layout. Values that do
// not parse are returned unchanged.
func (f *DateFormatter) TZToDisplay(tz string) string {
	t, err := parseTZ(tz)
	if err != nil {
		return tz
	}
	return t.In(f.location).Format(f.layout)
}

// NormalizeTZ converts any RFC 3339 time to [models.TimeLayoutTZ] in UTC,
// truncated to seconds. ok is false when the input does not parse.
func NormalizeTZ(value string) (string, bool) {
	t, err := parseTZ(value)
	if err != nil {
		return "", false
	}
	return t.UTC().Truncate(time.Second).Format(models.TimeLayoutTZ), true
}

func parseTZ(value string) (time.Time, error) {
	t, err := time.Parse(models.TimeLayoutTZ, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
