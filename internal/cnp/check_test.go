package cnp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withControl replaces the last digit of a 13-digit code with the computed
// control digit so that only the field under test decides the outcome.
func withControl(t *testing.T, code string) string {
	t.Helper()
	d, err := ParseDigits(code)
	require.NoError(t, err)
	return code[:Length-1] + string(rune('0'+ControlDigit(d)))
}

func TestCheck_Stages(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"published example", "1800101221144", nil},
		{"wrong control digit", "1800101221145", ErrChecksum},
		{"all zeros", "0000000000000", ErrSexCentury},
		{"month 22 day 91", "1802291234567", ErrBirthDate},
		{"feb 29 in non-leap 1981", "1810229221149", ErrBirthDate},
		{"feb 29 in leap 1980", "1800229221140", nil},
		{"feb 29 in 2000", "5000229221147", nil},
		{"feb 29 in 1900", "1000229221141", ErrBirthDate},
		{"county 52", "1800101521148", nil},
		{"county 53", "1800101531145", ErrCounty},
		{"county 99", "1800101991147", ErrCounty},
		{"remainder 10 maps to 1", "1800101221111", nil},
		{"remainder 10 with control 0", "1800101221110", ErrChecksum},
		{"too short", "180010122114", ErrFormat},
		{"too long", "18001012211440", ErrFormat},
		{"letter", "18001O1221144", ErrFormat},
		{"interior space", "1800101 21144", ErrFormat},
		{"empty", "", ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheck_SexCenturyDigits(t *testing.T) {
	t.Run("rejects 0", func(t *testing.T) {
		assert.ErrorIs(t, Check("0800101221142"), ErrSexCentury)
	})

	valid := []string{
		"1800101221144",
		"2800101221146",
		"3800101221148",
		"4800101221141",
		"5800101221141",
		"6800101221143",
		"7800101221145",
		"8800101221147",
		"9800101221149",
	}
	for _, code := range valid {
		t.Run("accepts "+code[:1], func(t *testing.T) {
			assert.NoError(t, Check(code))
		})
	}
}

func TestCheck_ResidentDigitsAnchorOn1800(t *testing.T) {
	// 7, 8 and 9 reconstruct the year from 1800, so YY=00 is 1800, not a leap year.
	assert.ErrorIs(t, Check(withControl(t, "7000229221140")), ErrBirthDate)
	assert.NoError(t, Check(withControl(t, "7040229221140")))
}

func TestCheck_Trimming(t *testing.T) {
	assert.NoError(t, Check("  1800101221144  "))
	assert.NoError(t, Check("\t1800101221144\n"))
	assert.ErrorIs(t, Check("18001 01221144"), ErrFormat)
}

func TestCheck_ChecksumCorruption(t *testing.T) {
	const valid = "1800101221144"
	for c := '0'; c <= '9'; c++ {
		code := valid[:12] + string(c)
		if code == valid {
			continue
		}
		assert.ErrorIs(t, Check(code), ErrChecksum, code)
	}
}

func TestCheck_ImpossibleDates(t *testing.T) {
	tests := []struct {
		name string
		date string // YYMMDD
	}{
		{"month 00", "800001"},
		{"month 13", "801301"},
		{"day 00", "800100"},
		{"day 32 in january", "800132"},
		{"day 31 in april", "800431"},
		{"day 40", "800140"},
		{"feb 30 in leap year", "800230"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := withControl(t, "1"+tt.date+"221140")
			assert.ErrorIs(t, Check(code), ErrBirthDate)
		})
	}
}

func TestCheck_HostileInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("1", 10000),
		"180010122114\x00",
		"\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c",
		"١٨٠٠١٠١٢٢١١٤٤", // Arabic-Indic digits
		"1800101221144\u200b",
		string([]byte{0xff, 0xfe, 0xfd, 0x31, 0x38, 0x30, 0x30, 0x31, 0x30, 0x31, 0x32, 0x32, 0x31}),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.ErrorIs(t, Check(in), ErrFormat)
		})
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonValid, Reason(nil))
	assert.Equal(t, ReasonFormat, Reason(Check("abc")))
	assert.Equal(t, ReasonSexCentury, Reason(Check("0000000000000")))
	assert.Equal(t, ReasonBirthDate, Reason(Check("1810229221149")))
	assert.Equal(t, ReasonCounty, Reason(Check("1800101531145")))
	assert.Equal(t, ReasonChecksum, Reason(Check("1800101221145")))
	assert.Equal(t, ReasonUnknown, Reason(errors.New("boom")))
}
