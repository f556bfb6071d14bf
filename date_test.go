package cookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRFC1123(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Valid date",
			input:    "Sun, 06 Nov 1994 08:49:37 GMT",
			expected: time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name:     "Midnight on a leap day",
			input:    "Thu, 29 Feb 2024 00:00:00 GMT",
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{name: "Impossible calendar date", input: "Fri, 30 Feb 2024 10:00:00 GMT", wantErr: true},
		{name: "Day out of range", input: "Fri, 32 Jan 2024 10:00:00 GMT", wantErr: true},
		{name: "Day zero", input: "Fri, 00 Jan 2024 10:00:00 GMT", wantErr: true},
		{name: "Hour out of range", input: "Sun, 06 Nov 1994 24:49:37 GMT", wantErr: true},
		{name: "Minute out of range", input: "Sun, 06 Nov 1994 08:60:37 GMT", wantErr: true},
		{name: "Single digit day", input: "Sun, 6 Nov 1994 08:49:37 GMT", wantErr: true},
		{name: "Two digit year", input: "Sun, 06 Nov 94 08:49:37 GMT", wantErr: true},
		{name: "Other timezone", input: "Sun, 06 Nov 1994 08:49:37 UTC", wantErr: true},
		{name: "Numeric offset", input: "Sun, 06 Nov 1994 08:49:37 +0200", wantErr: true},
		{name: "Trailing text", input: "Sun, 06 Nov 1994 08:49:37 GMT extra", wantErr: true},
		{name: "Unknown month", input: "Sun, 06 Noz 1994 08:49:37 GMT", wantErr: true},
		{name: "Full weekday", input: "Sunday, 06 Nov 1994 08:49:37 GMT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRFC1123(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseRFC850(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Two digit year before pivot",
			input:    "Wednesday, 15-Nov-23 09:13:29 GMT",
			expected: time.Date(2023, 11, 15, 9, 13, 29, 0, time.UTC),
		},
		{
			name:     "Two digit year after pivot",
			input:    "Sunday, 06-Nov-94 08:49:37 GMT",
			expected: time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name:     "Pivot year 69",
			input:    "Monday, 01-Jan-69 00:00:00 GMT",
			expected: time.Date(2069, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Pivot year 70",
			input:    "Thursday, 01-Jan-70 00:00:00 GMT",
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Four digit year",
			input:    "Wednesday, 15-Nov-2023 09:13:29 GMT",
			expected: time.Date(2023, 11, 15, 9, 13, 29, 0, time.UTC),
		},
		{
			name:     "Abbreviated weekday",
			input:    "Wed, 08-Nov-23 09:13:29 GMT",
			expected: time.Date(2023, 11, 8, 9, 13, 29, 0, time.UTC),
		},
		{
			name:     "Weekday not checked against the date",
			input:    "Monday, 08-Nov-23 09:13:29 GMT",
			expected: time.Date(2023, 11, 8, 9, 13, 29, 0, time.UTC),
		},
		{
			name:     "Four digit year is not shifted",
			input:    "Sunday, 06-Nov-0050 08:49:37 GMT",
			expected: time.Date(50, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{name: "Three digit year", input: "Sunday, 06-Nov-994 08:49:37 GMT", wantErr: true},
		{name: "Other timezone", input: "Sunday, 06-Nov-94 08:49:37 UTC", wantErr: true},
		{name: "Numeric offset", input: "Sunday, 06-Nov-94 08:49:37 +0200", wantErr: true},
		{name: "Impossible date", input: "Sunday, 31-Apr-94 08:49:37 GMT", wantErr: true},
		{name: "Spaces instead of dashes", input: "Sunday, 06 Nov 94 08:49:37 GMT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRFC850(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestParseANSIC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Single space single digit day",
			input:    "Sun Nov 6 08:49:37 1994",
			expected: time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name:     "Double space padded day",
			input:    "Sun Nov  6 08:49:37 1994",
			expected: time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name:     "Zero padded day",
			input:    "Sun Nov 06 08:49:37 1994",
			expected: time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name:     "Two digit day",
			input:    "Tue Dec 31 23:59:59 2024",
			expected: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{name: "Day zero", input: "Sun Nov 0 08:49:37 1994", wantErr: true},
		{name: "Comma after weekday", input: "Sun, Nov 6 08:49:37 1994", wantErr: true},
		{name: "Two digit year", input: "Sun Nov 6 08:49:37 94", wantErr: true},
		{name: "Timezone suffix", input: "Sun Nov 6 08:49:37 1994 GMT", wantErr: true},
		{name: "Three spaces", input: "Sun Nov   6 08:49:37 1994", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseANSIC(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestParseHTTPDate(t *testing.T) {
	expected := time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC)
	for _, input := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sunday, 06-Nov-94 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
	} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseHTTPDate(input)
			require.NoError(t, err)
			assert.True(t, expected.Equal(got))
		})
	}

	for _, input := range []string{
		"",
		"21 Octubre 2015 07:28:00 UTC",
		"21 October 2015 07:28:00 +0200",
		"2015-10-21T07:28:00Z",
	} {
		_, err := ParseHTTPDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestFixYear(t *testing.T) {
	assert.Equal(t, 2000, fixYear(0))
	assert.Equal(t, 2023, fixYear(23))
	assert.Equal(t, 2069, fixYear(69))
	assert.Equal(t, 1970, fixYear(70))
	assert.Equal(t, 1994, fixYear(94))
	assert.Equal(t, 2023, fixYear(2023))
}
