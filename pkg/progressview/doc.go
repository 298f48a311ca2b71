// Package progressview draws an in-place progress dashboard at the bottom of
// a terminal: a progress bar and a box of labeled statistics, while the rows
// above remain an ordinary scrolling log.
//
// # Layout
//
// For a terminal of R rows and a statistics box of H lines the dashboard
// reserves the bottom H+5 rows:
//
//	1 .. R-H-5    scroll region (log output)
//	R-H-4         blank gap
//	R-H-3         ──────── Progress ────────
//	R-H-2          Records ========------  12/100
//	R-H-1         ╭─────── Statistics ───────╮
//	R-H .. R-1    │ read 12  rate ▂▅▇  42   │
//	R             ╰──────────────────────────╯
//
// Init fails with an ErrGeometry error when R < H+9. A later resize below
// that height suspends the panel and lets the log use the whole screen until
// the terminal is large enough again.
//
// # Statistics fields
//
// Each line is a sequence of fields. A NONE field prints its label and value.
// A SPARK field also keeps a history of its samples and draws it as a
// sparkline. A GAUGE field tracks the largest value seen and draws the
// current value as a bar scaled against it. Sparklines and gauges on one
// line share the columns left over by labels and values equally.
//
// # Usage
//
//	dash := progressview.New(termio.NewConsole(os.Stdout))
//	if err := dash.Init(cfg); err != nil {
//		return err
//	}
//	defer dash.Reset(false)
//
//	fmt.Fprintln(dash, "copying files")
//	dash.UpdateProgress(42)
//	dash.UpdateStatistics([][]progressview.Sample{{progressview.Value(12)}})
package progressview
