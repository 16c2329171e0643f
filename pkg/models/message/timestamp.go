package message

import "time"

// TimeStampLayout keeps milliseconds so that moves played within the same
// second still sort in play order.
const TimeStampLayout = "2006-01-02 15:04:05.000"

// TimeStamp is a UTC wall-clock time in TimeStampLayout.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(TimeStampLayout))
}

func NowTimeStamp() TimeStamp {
	return NewTimeStamp(time.Now())
}

func ParseTimeStamp(s string) (TimeStamp, error) {
	if _, err := time.Parse(TimeStampLayout, s); err != nil {
		return "", err
	}
	return TimeStamp(s), nil
}

// Time returns the zero time for a malformed stamp.
func (ts TimeStamp) Time() time.Time {
	t, _ := time.Parse(TimeStampLayout, string(ts))
	return t
}
