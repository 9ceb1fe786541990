// Command genseries generates a synthetic daily climate series and prints it
// as a colorized table, with a window summary. It uses the actual domain
// package so the output matches what the dashboard service serves.
//
// Usage:
//
//	go run ./cmd/genseries -start 2025-08-13 -end 2025-08-20 -seed 7
//	go run ./cmd/genseries -days 31 -out data/fixtures/august.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/heatwatch/heatwave-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	highColor   = color.New(color.FgRed, color.Bold)
	mediumColor = color.New(color.FgYellow, color.Bold)
	lowColor    = color.New(color.FgGreen)
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	startFlag := flag.String("start", "", "start date (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "end date (YYYY-MM-DD), defaults to today")
	days := flag.Int("days", 7, "window length when -start is omitted")
	seed := flag.Int64("seed", 7, "RNG seed")
	out := flag.String("out", "", "optional output path for a JSON fixture")
	flag.Parse()

	start, end, err := resolveWindow(*startFlag, *endFlag, *days)
	if err != nil {
		return err
	}
	if start.After(end) {
		return fmt.Errorf("start date must be <= end date")
	}

	records := domain.GenerateSeries(start, end, *seed)
	summary := domain.Summarize(records)

	if *out != "" {
		if err := writeJSON(*out, records); err != nil {
			return fmt.Errorf("writing fixture: %w", err)
		}
		log.Printf("wrote fixture: %s (%d records)", *out, len(records))
	}

	if err := printTable(records); err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

// resolveWindow turns the flags into a concrete date range. With no -start,
// the window is the trailing -days ending at -end (or today).
func resolveWindow(startFlag, endFlag string, days int) (start, end time.Time, err error) {
	end = time.Now().UTC()
	if endFlag != "" {
		if end, err = time.Parse(dateLayout, endFlag); err != nil {
			return start, end, fmt.Errorf("invalid -end date %q", endFlag)
		}
	}
	start = end.AddDate(0, 0, -days)
	if startFlag != "" {
		if start, err = time.Parse(dateLayout, startFlag); err != nil {
			return start, end, fmt.Errorf("invalid -start date %q", startFlag)
		}
	}
	return start, end, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printTable(records []domain.DailyRecord) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Max Temp (C)", "Humidity (%)", "Heat Index", "Risk"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(records))
	for _, r := range records {
		data = append(data, []string{
			r.Date.Format(dateLayout),
			fmt.Sprintf("%.1f", r.MaxTempC),
			fmt.Sprintf("%d", r.Humidity),
			fmt.Sprintf("%.1f", r.HeatIndex),
			colorRisk(r.Risk),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printSummary(s domain.Summary) {
	fmt.Printf("\nWindow: %s to %s (%d days)\n",
		s.Start.Format(dateLayout), s.End.Format(dateLayout), s.Days)
	fmt.Printf("Peak max temp: %.1f C, peak heat index: %.1f\n",
		s.PeakMaxTempC, s.PeakHeatIndex)
	fmt.Printf("Risk: %s\n", colorRisk(s.Risk))
	fmt.Printf("Advice: %s\n", s.Advice)

	fmt.Println("\n3-day forecast:")
	for _, day := range s.Forecast {
		fmt.Printf("  %s  %.1f C  %s\n",
			day.Date.Format(dateLayout), day.MaxTempC, colorRisk(day.Risk))
	}
}

func colorRisk(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return highColor.Sprint(string(level))
	case domain.RiskMedium:
		return mediumColor.Sprint(string(level))
	default:
		return lowColor.Sprint(string(level))
	}
}
