package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/frankwiersma/namecheap-checker/pkg/consts"
	"github.com/frankwiersma/namecheap-checker/types"
	"github.com/frankwiersma/namecheap-checker/utils"

	"github.com/sirupsen/logrus"
)

// accepted expiry formats, tried in order; first match wins.
var expiryFormats = []string{
	"01/02/2006",
	"01/02/06",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var monthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// ParseDate parses a registrar date string. It never fails hard: a
// string matching none of the accepted formats yields nil.
func ParseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range expiryFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	logrus.Warnf("unable to parse date: %s", raw)
	return nil
}

// DaysLeft is the calendar difference between the expiry date and now,
// floored like the original report so boundary days land low.
func DaysLeft(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}

// Sorted returns a copy of the records ascending by parsed expiry date
// with the derived date attached; records whose date cannot be parsed
// sort after all records with a valid date.
func Sorted(domains []types.Domain) []types.Domain {
	out := make([]types.Domain, len(domains))
	copy(out, domains)
	for i := range out {
		out[i].ExpiryDate = ParseDate(out[i].Expires)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ExpiryDate, out[j].ExpiryDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out
}

// Upcoming filters records whose remaining days fall strictly in
// (0, UpcomingDays]. Input is expected to carry derived dates already.
func Upcoming(sorted []types.Domain, now time.Time) []types.Domain {
	out := make([]types.Domain, 0)
	for _, d := range sorted {
		if d.ExpiryDate == nil {
			continue
		}
		left := DaysLeft(*d.ExpiryDate, now)
		if left > 0 && left <= consts.UpcomingDays {
			out = append(out, d)
		}
	}
	return out
}

// Annotate renders the expiry column: the raw date plus the
// days-remaining marker.
func Annotate(d types.Domain, now time.Time) string {
	expiry := d.Expires
	if expiry == "" {
		expiry = "N/A"
	}
	if d.ExpiryDate == nil {
		return expiry
	}
	left := DaysLeft(*d.ExpiryDate, now)
	switch {
	case left > 0 && left <= consts.RenewSoonDays:
		return fmt.Sprintf("%s (%d days left) - RENEW SOON!", expiry, left)
	case left <= 0:
		return fmt.Sprintf("%s - EXPIRED!", expiry)
	default:
		return fmt.Sprintf("%s (%d days left)", expiry, left)
	}
}

// Stats are the aggregate counts over the full record list.
type Stats struct {
	Total      int
	AutoRenew  int
	Locked     int
	WhoisGuard int
}

func Tally(domains []types.Domain) Stats {
	s := Stats{Total: len(domains)}
	for _, d := range domains {
		if d.AutoRenew {
			s.AutoRenew++
		}
		if d.IsLocked {
			s.Locked++
		}
		if d.WhoisGuard == consts.WhoisGuardEnabled {
			s.WhoisGuard++
		}
	}
	return s
}

// Percent renders n as a share of the total with one decimal place.
// A zero total yields "N/A" instead of dividing.
func (s Stats) Percent(n int) string {
	if s.Total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(s.Total)*100)
}

// Group is one month/year bucket of the renewal calendar.
type Group struct {
	Label   string
	Domains []types.Domain
}

// Calendar buckets records by the month and year of the parsed expiry
// date, ordered chronologically. Records without a derived date belong
// to no bucket; within a bucket the input order is kept.
func Calendar(sorted []types.Domain) []Group {
	buckets := make(map[string][]types.Domain)
	for _, d := range sorted {
		if d.ExpiryDate == nil {
			continue
		}
		label := d.ExpiryDate.Format("January 2006")
		buckets[label] = append(buckets[label], d)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		yi, mi := monthYearKey(labels[i])
		yj, mj := monthYearKey(labels[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, Group{Label: label, Domains: buckets[label]})
	}
	return groups
}

// monthYearKey maps a "January 2006" label back to a sortable
// (year, month) pair; labels that fail to parse sort last.
func monthYearKey(label string) (int, int) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 9999, 13
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 9999, 13
	}
	month, ok := monthNumbers[parts[0]]
	if !ok {
		month = 13
	}
	return year, month
}

// Reporter writes the four report views to Out. Now is the reference
// timestamp for all remaining-days arithmetic.
type Reporter struct {
	Out io.Writer
	Now time.Time
}

func New(out io.Writer) *Reporter {
	return &Reporter{Out: out, Now: time.Now()}
}

// Write renders the full report: sorted listing, upcoming renewals,
// statistics and the renewal calendar.
func (r *Reporter) Write(domains []types.Domain, paging *types.Paging) {
	if paging != nil {
		fmt.Fprintf(r.Out, "Paging: Total Items: %d, Current Page: %d, Page Size: %d\n",
			paging.TotalItems, paging.CurrentPage, paging.PageSize)
	}

	if len(domains) == 0 {
		fmt.Fprintln(r.Out, "No domains found. Please check your API credentials and parameters.")
		return
	}

	sorted := Sorted(domains)

	r.writeListing(sorted)
	r.writeUpcoming(sorted)
	r.writeStats(domains)
	r.writeCalendar(sorted)
}

func (r *Reporter) writeListing(sorted []types.Domain) {
	fmt.Fprintf(r.Out, "\nTotal domains: %d\n", len(sorted))
	fmt.Fprintf(r.Out, "\n%-30s %-40s %-20s %-12s %-10s %-15s\n",
		"Domain Name", "Expiry Date", "Created Date", "Auto Renew", "Is Locked", "WHOIS Guard")
	fmt.Fprintln(r.Out, strings.Repeat("-", 130))

	for _, d := range sorted {
		created := d.Created
		if created == "" {
			created = "N/A"
		}
		fmt.Fprintf(r.Out, "%-30s %-40s %-20s %-12s %-10s %-15s\n",
			d.Name, Annotate(d, r.Now), created,
			utils.YesNo(d.AutoRenew), utils.YesNo(d.IsLocked), d.WhoisGuard)
	}
}

func (r *Reporter) writeUpcoming(sorted []types.Domain) {
	fmt.Fprintf(r.Out, "\n--- Upcoming Renewals (next %d days) ---\n", consts.UpcomingDays)

	upcoming := Upcoming(sorted, r.Now)
	if len(upcoming) == 0 {
		fmt.Fprintf(r.Out, "No domains expiring in the next %d days.\n", consts.UpcomingDays)
		return
	}

	fmt.Fprintf(r.Out, "\n%-30s %-20s %-10s %s\n", "Domain Name", "Expiry Date", "Days Left", "Auto Renew")
	fmt.Fprintln(r.Out, strings.Repeat("-", 75))

	for _, d := range upcoming {
		fmt.Fprintf(r.Out, "%-30s %-20s %-10d %s\n",
			d.Name, d.Expires, DaysLeft(*d.ExpiryDate, r.Now), utils.YesNo(d.AutoRenew))
	}
}

func (r *Reporter) writeStats(domains []types.Domain) {
	fmt.Fprintln(r.Out, "\n--- Domain Statistics ---")

	s := Tally(domains)
	fmt.Fprintf(r.Out, "Total domains: %d\n", s.Total)
	fmt.Fprintf(r.Out, "Auto-renew enabled: %d (%s of all domains)\n", s.AutoRenew, s.Percent(s.AutoRenew))
	fmt.Fprintf(r.Out, "Locked domains: %d (%s of all domains)\n", s.Locked, s.Percent(s.Locked))
	fmt.Fprintf(r.Out, "WHOIS guard enabled: %d (%s of all domains)\n", s.WhoisGuard, s.Percent(s.WhoisGuard))
}

func (r *Reporter) writeCalendar(sorted []types.Domain) {
	fmt.Fprintln(r.Out, "\n--- Domain Renewal Calendar ---")

	for _, g := range Calendar(sorted) {
		fmt.Fprintf(r.Out, "\n%s:\n", g.Label)
		for _, d := range g.Domains {
			fmt.Fprintf(r.Out, "  - %s (Expires: %s)\n", d.Name, d.Expires)
		}
	}
}
