package cookie

import (
	"time"
)

// ExpiresFormat is the layout used when writing the Expires attribute.
const ExpiresFormat = "Mon, 02-Jan-2006 15:04:05 GMT"

var (
	monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	shortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	longWeekdays  = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// ParseHTTPDate parses a date in any of the three layouts allowed for HTTP
// dates by RFC 2616 section 3.3.1, trying RFC 1123, RFC 850 and asctime in
// that order. The weekday name is read but not checked against the date.
func ParseHTTPDate(s string) (time.Time, error) {
	if t, err := ParseRFC1123(s); err == nil {
		return t, nil
	}
	if t, err := ParseRFC850(s); err == nil {
		return t, nil
	}
	return ParseANSIC(s)
}

// ParseRFC1123 parses dates such as "Sun, 06 Nov 1994 08:49:37 GMT".
func ParseRFC1123(s string) (time.Time, error) {
	sc := dateScanner{s: s}
	if !sc.shortWeekday() || !sc.literal(", ") {
		return time.Time{}, ErrInvalidDate
	}
	day, ok := sc.fixedDigits(2)
	if !ok || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	month, ok := sc.month()
	if !ok || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	year, ok := sc.fixedDigits(4)
	if !ok || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	hour, minute, second, ok := sc.clock()
	if !ok || !sc.literal(" GMT") || !sc.done() {
		return time.Time{}, ErrInvalidDate
	}
	return makeDate(year, month, day, hour, minute, second)
}

// ParseRFC850 parses dates such as "Sunday, 06-Nov-94 08:49:37 GMT". The
// weekday may be abbreviated and the year may have four digits. Two digit
// years below 70 are in the 2000s, the rest in the 1900s. Four digit years
// are taken as written.
func ParseRFC850(s string) (time.Time, error) {
	sc := dateScanner{s: s}
	if !sc.weekday() || !sc.literal(", ") {
		return time.Time{}, ErrInvalidDate
	}
	day, ok := sc.fixedDigits(2)
	if !ok || !sc.literal("-") {
		return time.Time{}, ErrInvalidDate
	}
	month, ok := sc.month()
	if !ok || !sc.literal("-") {
		return time.Time{}, ErrInvalidDate
	}
	year, n := sc.digits(4)
	if n != 2 && n != 4 {
		return time.Time{}, ErrInvalidDate
	}
	if !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	hour, minute, second, ok := sc.clock()
	if !ok || !sc.literal(" GMT") || !sc.done() {
		return time.Time{}, ErrInvalidDate
	}
	if n == 2 {
		year = fixYear(year)
	}
	return makeDate(year, month, day, hour, minute, second)
}

// ParseANSIC parses C asctime dates such as "Sun Nov  6 08:49:37 1994". The
// day may be padded with a second space or a leading zero.
func ParseANSIC(s string) (time.Time, error) {
	sc := dateScanner{s: s}
	if !sc.shortWeekday() || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	month, ok := sc.month()
	if !ok || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	sc.literal(" ")
	day, n := sc.digits(2)
	if n == 0 || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	hour, minute, second, ok := sc.clock()
	if !ok || !sc.literal(" ") {
		return time.Time{}, ErrInvalidDate
	}
	year, ok := sc.fixedDigits(4)
	if !ok || !sc.done() {
		return time.Time{}, ErrInvalidDate
	}
	return makeDate(year, month, day, hour, minute, second)
}

// fixYear maps two digit years onto 1970-2069.
func fixYear(year int) int {
	switch {
	case year < 70:
		return year + 2000
	case year < 100:
		return year + 1900
	}
	return year
}

// makeDate builds a UTC instant and rejects values time.Date would normalize.
func makeDate(year int, month time.Month, day, hour, minute, second int) (time.Time, error) {
	if day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, ErrInvalidDate
	}
	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// dateScanner walks a date string left to right over fixed-width fields.
type dateScanner struct {
	s   string
	pos int
}

func (sc *dateScanner) done() bool {
	return sc.pos == len(sc.s)
}

func (sc *dateScanner) literal(lit string) bool {
	if len(sc.s)-sc.pos < len(lit) || sc.s[sc.pos:sc.pos+len(lit)] != lit {
		return false
	}
	sc.pos += len(lit)
	return true
}

// digits reads up to limit ASCII digits and reports how many were read.
func (sc *dateScanner) digits(limit int) (int, int) {
	v, n := 0, 0
	for n < limit && sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		sc.pos++
		n++
	}
	return v, n
}

// fixedDigits reads exactly n ASCII digits.
func (sc *dateScanner) fixedDigits(n int) (int, bool) {
	v, read := sc.digits(n)
	return v, read == n
}

func (sc *dateScanner) month() (time.Month, bool) {
	for i, name := range monthNames {
		if sc.literal(name) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func (sc *dateScanner) shortWeekday() bool {
	for _, name := range shortWeekdays {
		if sc.literal(name) {
			return true
		}
	}
	return false
}

// weekday accepts a full or abbreviated weekday name.
func (sc *dateScanner) weekday() bool {
	for _, name := range longWeekdays {
		if sc.literal(name) {
			return true
		}
	}
	return sc.shortWeekday()
}

// clock reads "HH:MM:SS" with two digits per field.
func (sc *dateScanner) clock() (hour, minute, second int, ok bool) {
	if hour, ok = sc.fixedDigits(2); !ok || !sc.literal(":") {
		return 0, 0, 0, false
	}
	if minute, ok = sc.fixedDigits(2); !ok || !sc.literal(":") {
		return 0, 0, 0, false
	}
	if second, ok = sc.fixedDigits(2); !ok {
		return 0, 0, 0, false
	}
	return hour, minute, second, true
}
