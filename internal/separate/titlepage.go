// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"strings"
	"text/template"
)

// titlePageTmpl is the decorative page injected before each group's
// tables. Custom delimiters keep the template syntax clear of LaTeX
// braces. Colors teamprimary/teamsecondary come from the guide preamble.
var titlePageTmpl = template.Must(template.New("titlepage").Delims("[[", "]]").Parse(`
\newpage
\thispagestyle{empty}
\begin{center}
\vspace*{1cm}

% Title section at the top
\begin{tikzpicture}[overlay, remember picture]
    % Semi-transparent background for text
    \fill[white, opacity=0.9] ($(current page.north) + (-6cm, -2cm)$) rectangle ($(current page.north) + (6cm, -6cm)$);

    % Section title
    \node[anchor=center, text width=12cm, align=center] at ($(current page.north) + (0, -3.5cm)$) {
        \fontsize{36pt}{40pt}\selectfont\textbf{\textcolor{teamprimary}{[[.Section]]}}
    };

    % Subsection title
    \node[anchor=center, text width=12cm, align=center] at ($(current page.north) + (0, -4.5cm)$) {
        \fontsize{24pt}{28pt}\selectfont\textbf{\textcolor{teamsecondary}{[[.Subsection]]}}
    };
\end{tikzpicture}

% Image below the title
\vspace*{4cm}
\begin{tikzpicture}[overlay, remember picture]
    \node[anchor=center] at ($(current page.center) + (0, -1cm)$) {
        \includegraphics[width=0.6\textwidth, height=0.5\textheight, keepaspectratio]{[[.Image]]}
    };
\end{tikzpicture}

\vfill
\end{center}
\clearpage
`))

// TitlePage renders the decorative page for one section group.
func TitlePage(section, subsection, image string) string {
	var b strings.Builder
	// Execute cannot fail here: the template is static and the writer
	// never errors.
	_ = titlePageTmpl.Execute(&b, struct {
		Section, Subsection, Image string
	}{section, subsection, image})
	return b.String()
}
