// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profiles

import (
	"reflect"
	"testing"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// sheetRows prepends the header scaffolding every profile sheet carries.
func sheetRows(data ...[]string) [][]string {
	rows := make([][]string, headerRows)
	for i := range rows {
		rows[i] = []string{"Header", ""}
	}
	return append(rows, data...)
}

func TestParseEvents(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []types.Event
	}{
		{
			name: "empty sheet",
			rows: sheetRows(),
			want: nil,
		},
		{
			name: "single event with two seasons",
			rows: sheetRows(
				[]string{"100 Free", "2021", "1", "8", "9", "16", "", "1", "8", "9", "16"},
				[]string{"", "2022", "2", "9", "10", "17", "", "2", "9", "10", "17"},
			),
			want: []types.Event{{
				Name: "100 Free",
				Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"1", "8", "9", "16"}, Finals: [4]string{"1", "8", "9", "16"}},
					{Year: 2022, Prelims: [4]string{"2", "9", "10", "17"}, Finals: [4]string{"2", "9", "10", "17"}},
				},
			}},
		},
		{
			name: "new event starts on non-empty first column",
			rows: sheetRows(
				[]string{"100 Free", "2021", "a", "b", "c", "d", "", "e", "f", "g", "h"},
				[]string{"200 Free", "2021", "a", "b", "c", "d", "", "e", "f", "g", "h"},
			),
			want: []types.Event{
				{Name: "100 Free", Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "b", "c", "d"}, Finals: [4]string{"e", "f", "g", "h"}},
				}},
				{Name: "200 Free", Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "b", "c", "d"}, Finals: [4]string{"e", "f", "g", "h"}},
				}},
			},
		},
		{
			name: "rows without a usable year are skipped",
			rows: sheetRows(
				[]string{"100 Free", "2021", "a", "b", "c", "d", "", "e", "f", "g", "h"},
				[]string{"", "n/a", "x", "x", "x", "x", "", "x", "x", "x", "x"},
				[]string{"", "", "x", "x", "x", "x", "", "x", "x", "x", "x"},
			),
			want: []types.Event{{
				Name: "100 Free",
				Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "b", "c", "d"}, Finals: [4]string{"e", "f", "g", "h"}},
				},
			}},
		},
		{
			name: "event without year rows is dropped",
			rows: sheetRows(
				[]string{"Relay", "", "", "", "", "", "", "", "", "", ""},
				[]string{"100 Free", "2021", "a", "b", "c", "d", "", "e", "f", "g", "h"},
			),
			want: []types.Event{{
				Name: "100 Free",
				Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "b", "c", "d"}, Finals: [4]string{"e", "f", "g", "h"}},
				},
			}},
		},
		{
			name: "short rows read as empty cells",
			rows: sheetRows(
				[]string{"100 Free", "2021", "a"},
			),
			want: []types.Event{{
				Name: "100 Free",
				Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "", "", ""}},
				},
			}},
		},
		{
			name: "float-formatted years are accepted",
			rows: sheetRows(
				[]string{"100 Free", "2021.0", "a", "b", "c", "d", "", "e", "f", "g", "h"},
			),
			want: []types.Event{{
				Name: "100 Free",
				Rows: []types.EventRow{
					{Year: 2021, Prelims: [4]string{"a", "b", "c", "d"}, Finals: [4]string{"e", "f", "g", "h"}},
				},
			}},
		},
		{
			name: "data above the header rows is ignored",
			rows: [][]string{
				{"100 Free", "2019", "x", "x", "x", "x", "", "x", "x", "x", "x"},
				{}, {}, {}, {},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEvents(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEvents() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseEventsBlockCount(t *testing.T) {
	// One event per non-empty first-column marker with at least one
	// season row.
	rows := sheetRows(
		[]string{"100 Free", "2020", "a", "b", "c", "d", "", "e", "f", "g", "h"},
		[]string{"", "2021", "a", "b", "c", "d", "", "e", "f", "g", "h"},
		[]string{"200 Free", "2020", "a", "b", "c", "d", "", "e", "f", "g", "h"},
		[]string{"500 Free", "2020", "a", "b", "c", "d", "", "e", "f", "g", "h"},
	)
	got := ParseEvents(rows)
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2021", 2021, true},
		{" 2021 ", 2021, true},
		{"2021.0", 2021, true},
		{"2021.5", 0, false},
		{"", 0, false},
		{"n/a", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseYear(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseYear(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
