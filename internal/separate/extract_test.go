// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"reflect"
	"testing"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		want          []types.Section
		wantUnmatched int
	}{
		{
			name: "empty document",
			text: "",
			want: nil,
		},
		{
			name: "no headings",
			text: "\\section{Records}\nsome table\n\\end{document}\n",
			want: nil,
		},
		{
			name: "single section to end of input",
			text: "\\subsection{CMS at UCSD}\n\\subsubsection{Stag}\nrow one\nrow two\n",
			want: []types.Section{
				{Name: "CMS at UCSD", Sex: "Stag", Body: "row one\nrow two"},
			},
		},
		{
			name: "body stops at next subsection",
			text: "\\subsection{A}\n\\subsubsection{Men}\nbody A\n\\subsection{B}\n\\subsubsection{Women}\nbody B\n",
			want: []types.Section{
				{Name: "A", Sex: "Men", Body: "body A"},
				{Name: "B", Sex: "Women", Body: "body B"},
			},
		},
		{
			name: "body stops at end of document marker",
			text: "\\subsection{A}\n\\subsubsection{Men}\nbody\n\\end{document}\nleftover\n",
			want: []types.Section{
				{Name: "A", Sex: "Men", Body: "body"},
			},
		},
		{
			name: "blank lines allowed between heading pair",
			text: "\\subsection{A}\n\n\n\\subsubsection{Men}\nbody\n",
			want: []types.Section{
				{Name: "A", Sex: "Men", Body: "body"},
			},
		},
		{
			name:          "heading without sub-heading is skipped",
			text:          "\\subsection{A}\ntable rows\n\\subsection{B}\n\\subsubsection{Men}\nbody\n",
			want:          []types.Section{{Name: "B", Sex: "Men", Body: "body"}},
			wantUnmatched: 1,
		},
		{
			name:          "consecutive headings drop the first",
			text:          "\\subsection{A}\n\\subsection{B}\n\\subsubsection{Men}\nbody\n",
			want:          []types.Section{{Name: "B", Sex: "Men", Body: "body"}},
			wantUnmatched: 1,
		},
		{
			name:          "trailing heading without sub-heading",
			text:          "\\subsection{A}\n\\subsubsection{Men}\nbody\n\\subsection{B}\n",
			want:          []types.Section{{Name: "A", Sex: "Men", Body: "body"}},
			wantUnmatched: 1,
		},
		{
			name: "order preserved",
			text: "\\subsection{B}\n\\subsubsection{Men}\nb\n" +
				"\\subsection{A}\n\\subsubsection{Women}\na\n" +
				"\\subsection{B}\n\\subsubsection{Women}\nb2\n",
			want: []types.Section{
				{Name: "B", Sex: "Men", Body: "b"},
				{Name: "A", Sex: "Women", Body: "a"},
				{Name: "B", Sex: "Women", Body: "b2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Scan(tt.text)
			if !reflect.DeepEqual(res.Sections, tt.want) {
				t.Errorf("Sections = %#v, want %#v", res.Sections, tt.want)
			}
			if res.Unmatched != tt.wantUnmatched {
				t.Errorf("Unmatched = %d, want %d", res.Unmatched, tt.wantUnmatched)
			}
		})
	}
}

func TestScanDeterministic(t *testing.T) {
	text := "\\subsection{A}\n\\subsubsection{Men}\nbody A\n\\subsection{B}\n\\subsubsection{Women}\nbody B\n\\end{document}\n"
	first := Scan(text)
	second := Scan(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("re-scanning the same text should yield identical results")
	}
}
