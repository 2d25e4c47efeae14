package dto_test

import (
	"errors"
	"testing"

	"homedash/internal/modules/calendar/dto"
	apperrors "homedash/internal/platform/errors"
)

func TestParseMonth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in      string
		want    dto.MonthInput
		invalid bool
	}{
		{in: "2024-02", want: dto.MonthInput{Year: 2024, Month: 2}},
		{in: " 1999-12 ", want: dto.MonthInput{Year: 1999, Month: 12}},
		{in: "", want: dto.MonthInput{}},
		{in: "Feb 2024", invalid: true},
		{in: "2024-13", invalid: true},
	}
	for _, tc := range cases {
		got, err := dto.ParseMonth(tc.in)
		if tc.invalid {
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Fatalf("%q: expected invalid input, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: got %+v %v, want %+v", tc.in, got, err, tc.want)
		}
	}
}
