package commands

import (
	"fmt"

	"github.com/mkunkel/tix/internal/config"
	"github.com/mkunkel/tix/internal/stats"
	"github.com/mkunkel/tix/internal/styles"
)

// Stats prints the usage summary. It reads the stats file directly and
// does not touch the tracker or record itself.
func Stats() {
	st, err := stats.Load(config.StatsFilePath())
	if err != nil {
		fail("Error loading stats", err)
	}

	if st.TotalInvocations() == 0 {
		fmt.Println(styles.DimStyle.Render("No usage recorded yet"))
		return
	}

	fmt.Println(styles.TitleStyle.Render("tix usage"))
	if !st.FirstUsed.IsZero() {
		fmt.Println(styles.DimStyle.Render("since " + st.FirstUsed.Format("2006-01-02")))
	}
	fmt.Println()

	for _, row := range st.Summary() {
		fmt.Printf("  %s %s %s\n",
			styles.HighlightStyle.Render(fmt.Sprintf("%4d×", row.Count)),
			row.Name,
			styles.DimStyle.Render("last "+row.LastUsed.Format("2006-01-02 15:04")))
	}
	fmt.Println()
	fmt.Printf("  %s total\n", styles.HighlightStyle.Render(fmt.Sprintf("%d", st.TotalInvocations())))
}
