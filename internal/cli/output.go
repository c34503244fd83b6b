package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/service"
)

// fetchCategory retrieves one category and writes it in the chosen format.
func fetchCategory(cmd *cobra.Command, svc *service.Service, category, format string, refresh bool) error {
	ctx := cmd.Context()

	var (
		rec interface{}
		err error
	)
	switch category {
	case "home":
		rec, err = svc.Home(ctx, refresh)
	case "events":
		rec, err = svc.Events(ctx, refresh)
	case "bookstore":
		rec, err = svc.Bookstore(ctx, refresh)
	case "donation":
		rec, err = svc.Donation(ctx, refresh)
	case "admissions":
		rec, err = svc.Admissions(ctx, refresh)
	case "contact":
		rec, err = svc.Contact(ctx, refresh)
	case "classes":
		rec, err = svc.Classes(ctx, refresh)
	case "calendar":
		rec, err = svc.Calendar(ctx, refresh)
	default:
		return fmt.Errorf("unknown category: %s", category)
	}
	if err != nil {
		return fmt.Errorf("unable to load %s: %w", category, err)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(w, rec)
	}
	renderText(w, rec)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderText prints a category record in a compact human-readable form.
// Absent optional fields are simply omitted.
func renderText(w io.Writer, rec interface{}) {
	switch r := rec.(type) {
	case content.Home:
		printOpt(w, "Thought of the day", r.Thought)
		for _, evt := range r.UpcomingEvents {
			fmt.Fprintf(w, "Upcoming: %s\n", evt)
		}
		for _, img := range r.CarouselImages {
			fmt.Fprintf(w, "Image: %s\n", img)
		}
	case content.Events:
		for _, card := range r.Cards {
			printCard(w, card)
		}
		fmt.Fprintf(w, "%d event(s)\n", len(r.Cards))
	case content.Bookstore:
		printOpt(w, "About", r.Intro)
		for _, item := range r.Items {
			printCard(w, item)
		}
	case content.Donation:
		printOpt(w, "Zelle email", r.ZelleEmail)
		printMethod(w, "Zelle", r.Zelle)
		printMethod(w, "Check", r.Check)
		printMethod(w, "PayPal", r.PayPal)
		printMethod(w, "Credit card", r.CreditCard)
		printMethod(w, "Matching grant", r.MatchingGrant)
	case content.Admissions:
		printOpt(w, "I. New admissions", r.NewAdmissions)
		printOpt(w, "II. Waitlist", r.Waitlist)
		printOpt(w, "III. Documents", r.Documents)
		printOpt(w, "IV. Withdrawal", r.Withdrawal)
	case content.Contact:
		printOpt(w, "Phone", r.Phone)
		printOpt(w, "Address", r.Address)
		for _, link := range r.FormLinks {
			fmt.Fprintf(w, "Form: %s\n", link)
		}
		for _, email := range r.Emails {
			fmt.Fprintf(w, "Email: %s\n", email)
		}
	case content.Classes:
		printClassGroup(w, "Curricular", r.Curricular)
		printClassGroup(w, "Music", r.Music)
		printClassGroup(w, "Camp", r.Camp)
	case content.Calendar:
		for key, events := range r.Months {
			fmt.Fprintf(w, "%d-%02d: %d event(s)\n", key/100, key%100, len(events))
		}
	default:
		fmt.Fprintf(w, "%v\n", rec)
	}
}

func printOpt(w io.Writer, label string, value *string) {
	if value != nil {
		fmt.Fprintf(w, "%s: %s\n", label, *value)
	}
}

func printCard(w io.Writer, card content.EventCard) {
	fmt.Fprintf(w, "- %s\n  %s\n", card.Title, card.ImageURL)
	if card.Description != nil {
		fmt.Fprintf(w, "  %s\n", *card.Description)
	}
}

func printMethod(w io.Writer, label string, m *content.PaymentMethod) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	if m.Instruction != nil {
		fmt.Fprintf(w, "  %s\n", *m.Instruction)
	}
	if m.URL != nil {
		fmt.Fprintf(w, "  %s\n", *m.URL)
	}
	if m.Note != nil {
		fmt.Fprintf(w, "  %s\n", *m.Note)
	}
}

func printClassGroup(w io.Writer, label string, sections []content.ClassSection) {
	if len(sections) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, sec := range sections {
		fmt.Fprintf(w, "- %s", sec.Name)
		if sec.Schedule != nil {
			fmt.Fprintf(w, " (%s)", *sec.Schedule)
		}
		fmt.Fprintln(w)
		if sec.Description != nil {
			fmt.Fprintf(w, "  %s\n", *sec.Description)
		}
	}
}

// writeCalendar prints one month of curated events.
func writeCalendar(w io.Writer, year int, month time.Month, events []content.PanchangEvent, format string) error {
	if format == "json" {
		return writeJSON(w, map[string]interface{}{
			"year":   year,
			"month":  int(month),
			"events": events,
		})
	}

	fmt.Fprintf(w, "%s %d\n", month, year)
	if len(events) == 0 {
		fmt.Fprintln(w, "no events")
		return nil
	}
	for _, evt := range events {
		fmt.Fprintf(w, "%s  %s%s\n", evt.Date, evt.Title, flagSuffix(evt.Flags))
		if evt.Description != nil {
			fmt.Fprintf(w, "            %s\n", *evt.Description)
		}
	}
	return nil
}

func flagSuffix(flags content.EventFlags) string {
	suffix := ""
	if flags.Institution {
		suffix += " [temple]"
	}
	if flags.PublicHoliday {
		suffix += " [holiday]"
	}
	if flags.RegionalCalendar {
		suffix += " [panchang]"
	}
	return suffix
}
