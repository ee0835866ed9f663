package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seminarhub/internal/domain"
)

const maxDescriptionWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func printSeminarsTable(w io.Writer, seminars []*domain.Seminar) {
	widths := map[string]int{"ID": 4, "TITLE": 10, "DATE": 10, "TIME": 5}
	for _, s := range seminars {
		widths["ID"] = max(widths["ID"], len(strconv.FormatInt(s.ID, 10)))
		widths["TITLE"] = max(widths["TITLE"], min(len([]rune(s.Title)), 30))
		widths["DATE"] = max(widths["DATE"], len([]rune(s.Date)))
		widths["TIME"] = max(widths["TIME"], len([]rune(s.Time)))
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		headerStyle.Render(padRight("ID", widths["ID"])),
		headerStyle.Render(padRight("TITLE", widths["TITLE"])),
		headerStyle.Render(padRight("DATE", widths["DATE"])),
		headerStyle.Render(padRight("TIME", widths["TIME"])),
		headerStyle.Render("DESCRIPTION"),
	)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", widths["ID"]+widths["TITLE"]+widths["DATE"]+widths["TIME"]+8+len("DESCRIPTION")))

	for _, s := range seminars {
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			idStyle.Render(padRight(strconv.FormatInt(s.ID, 10), widths["ID"])),
			padRight(truncate(s.Title, widths["TITLE"]), widths["TITLE"]),
			padRight(s.Date, widths["DATE"]),
			padRight(s.Time, widths["TIME"]),
			truncate(s.Description, maxDescriptionWidth),
		)
	}
}

func printSeminar(w io.Writer, s *domain.Seminar) {
	rows := []struct{ label, value string }{
		{"ID", strconv.FormatInt(s.ID, 10)},
		{"Title", s.Title},
		{"Description", s.Description},
		{"Date", s.Date},
		{"Time", s.Time},
		{"Photo", s.Photo},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render(padRight(r.label+":", 13)), r.value)
	}
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this seminar? [y/N]: ")
func promptConfirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response := strings.TrimSpace(line)

	return response == "y" || response == "Y"
}
