// Regcal loads a schedule definition and its ICS feeds, then prints the
// computed calendar for a reference date: the resolved view range, flagged
// double-bookings, per-resource lane layout, and the paginated resource
// list. It can also answer a one-off availability check for a candidate
// booking.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ugnoguchigxp/regular-calendar/engine"
	"github.com/ugnoguchigxp/regular-calendar/internal/config"
	"github.com/ugnoguchigxp/regular-calendar/internal/ics"
)

type Config struct {
	ConfigPath string `envDefault:"./schedule.yaml"`

	// Date is the reference date (YYYY-MM-DD); empty means today.
	Date string
	View string `envDefault:"week"`
	Page int

	// CheckResource/CheckStart/CheckEnd describe a candidate booking to
	// validate against the loaded schedule (times in RFC3339).
	CheckResource string
	CheckStart    string
	CheckEnd      string

	// ExportPath, if set, writes the merged schedule back out as one iCal
	// feed.
	ExportPath string
}

func main() {
	conf, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "REGCAL_", UseFieldNameByDefault: true})
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(conf.ConfigPath)
	if err != nil {
		slog.Error("failed to load schedule config", "error", err)
		os.Exit(1)
	}

	ref := time.Now()
	if conf.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", conf.Date, time.Local)
		if err != nil {
			slog.Warn("unparseable reference date, using today", "date", conf.Date)
		} else {
			ref = parsed
		}
	}

	sched := engine.NewScheduler(cfg.Settings())
	mode := engine.ViewMode(conf.View)
	start, end := sched.CalculateRange(ref, mode)
	fmt.Printf("%s view: %s .. %s\n\n", mode, start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04:05.000"))

	events := loadFeeds(cfg, start, end)
	marked := engine.MarkConflicts(events)
	idx := sched.BuildIndexes(marked)

	if conf.CheckResource != "" {
		runCheck(conf, marked)
	}

	if conf.ExportPath != "" {
		if err := exportFeed(conf.ExportPath, marked); err != nil {
			slog.Error("failed to export feed", "path", conf.ExportPath, "error", err)
		}
	}

	resources := engine.SortResources(cfg.EngineResources())
	pages := engine.Paginate(resources, cfg.View.MaxPerPage)
	pager := engine.NewPager(len(pages))
	page := pages[pager.Go(conf.Page)]

	fmt.Printf("page %d of %d (%d resources)\n", page.Index+1, len(pages), page.Count)
	for _, r := range page.Resources {
		printResource(sched, idx, r, start, end)
	}
}

func loadFeeds(cfg *config.Config, start, end time.Time) []engine.Event {
	var events []engine.Event
	for _, feed := range cfg.EngineFeeds() {
		body, err := os.ReadFile(feed.Path)
		if err != nil {
			slog.Error("skipping unreadable feed", "feed", feed.ID, "error", err)
			continue
		}
		evs, err := ics.Load(feed, body, start, end)
		if err != nil {
			slog.Error("skipping broken feed", "feed", feed.ID, "error", err)
			continue
		}
		events = append(events, evs...)
	}
	return events
}

func exportFeed(path string, events []engine.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ics.WriteFeed(f, "regular-calendar", events)
}

func runCheck(conf Config, existing []engine.Event) {
	req := engine.ConflictRequest{ResourceID: conf.CheckResource}
	req.Start, _ = time.Parse(time.RFC3339, conf.CheckStart)
	req.End, _ = time.Parse(time.RFC3339, conf.CheckEnd)

	if conflict := engine.CheckConflict(req, existing); conflict != nil {
		fmt.Printf("CONFLICT on %s: %q (%s .. %s)\n\n",
			conflict.ResourceID, conflict.Event.Title,
			conflict.Event.Start.Format(time.RFC3339), conflict.Event.End.Format(time.RFC3339))
	} else {
		fmt.Printf("%s is free %s .. %s\n\n", conf.CheckResource, conf.CheckStart, conf.CheckEnd)
	}
}

func printResource(sched *engine.Scheduler, idx *engine.EventIndexes, r engine.Resource, start, end time.Time) {
	note := ""
	if !r.Available {
		note = " (unavailable)"
	}
	evs := idx.ByResource(r.ID)
	fmt.Printf("  %s [%s]%s: %d bookings\n", r.Name, r.ID, note, len(evs))

	for _, day := range sched.EnumerateDays(start, end) {
		dayKey := sched.DayKey(day)
		var todays []engine.Event
		for _, ev := range evs {
			if sched.DayKey(ev.Start) == dayKey {
				todays = append(todays, ev)
			}
		}
		if len(todays) == 0 {
			continue
		}

		laid := engine.LayoutColumns(todays, engine.StartOfDay(day), engine.EndOfDay(day))
		for _, l := range laid {
			flag := ""
			if l.Conflict {
				flag = "  !! double-booked"
			}
			fmt.Printf("    %s %s-%s lane %d/%d (%.0f%% wide, y=%.0fpx)%s\n",
				dayKey,
				l.Start.Format("15:04"), l.End.Format("15:04"),
				l.Column+1, l.TotalColumns,
				l.WidthPercent(), sched.Settings().PixelOffset(l.Start, engine.StartOfDay(day)), flag)
		}
	}
}
