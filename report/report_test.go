package report_test

import (
	"bytes"
	"time"

	"github.com/frankwiersma/namecheap-checker/report"
	"github.com/frankwiersma/namecheap-checker/types"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("date", func() {
	var cases []struct {
		raw    string
		expect *time.Time
	}

	BeforeEach(func() {
		d := func(year int, month time.Month, day int) *time.Time {
			t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			return &t
		}
		cases = []struct {
			raw    string
			expect *time.Time
		}{
			{"03/15/2026", d(2026, time.March, 15)},
			{"03/15/26", d(2026, time.March, 15)},
			{"2026-03-15T00:00:00", d(2026, time.March, 15)},
			{"2026-03-15", d(2026, time.March, 15)},
			{"15-03-2026", nil},
			{"soon", nil},
			{"", nil},
		}
	})

	Describe("parse date", func() {
		It("parse date should correctly", func() {
			for _, c := range cases {
				got := report.ParseDate(c.raw)
				if c.expect == nil {
					Expect(got).To(BeNil())
				} else {
					Expect(got).NotTo(BeNil())
					Expect(got.Equal(*c.expect)).To(BeTrue())
				}
			}
		})
	})
})

var _ = Describe("views", func() {
	var (
		now     time.Time
		expires func(days int) string
		domains []types.Domain
	)

	BeforeEach(func() {
		now = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		expires = func(days int) string {
			return now.AddDate(0, 0, days).Format("01/02/2006")
		}
		domains = []types.Domain{
			{Name: "late.example", Expires: expires(400), AutoRenew: true, WhoisGuard: "ENABLED"},
			{Name: "soon.example", Expires: expires(15), IsLocked: true, WhoisGuard: "ENABLED"},
			{Name: "gone.example", Expires: expires(-400), WhoisGuard: "NOTPRESENT"},
			{Name: "odd.example", Expires: "someday"},
		}
	})

	Describe("sorted listing", func() {
		It("sorted listing should correctly", func() {
			sorted := report.Sorted(domains)
			names := make([]string, 0, len(sorted))
			for _, d := range sorted {
				names = append(names, d.Name)
			}
			Expect(names).To(Equal([]string{"gone.example", "soon.example", "late.example", "odd.example"}))

			// valid dates precede invalid ones, non-decreasing.
			var last *time.Time
			for _, d := range sorted {
				if d.ExpiryDate == nil {
					continue
				}
				if last != nil {
					Expect(last.After(*d.ExpiryDate)).To(BeFalse())
				}
				last = d.ExpiryDate
			}
			Expect(sorted[len(sorted)-1].ExpiryDate).To(BeNil())
		})

		It("sorted listing should not mutate the input", func() {
			report.Sorted(domains)
			for _, d := range domains {
				Expect(d.ExpiryDate).To(BeNil())
			}
		})
	})

	Describe("annotate", func() {
		It("annotate should correctly", func() {
			sorted := report.Sorted(domains)
			byName := make(map[string]types.Domain)
			for _, d := range sorted {
				byName[d.Name] = d
			}
			Expect(report.Annotate(byName["soon.example"], now)).To(ContainSubstring("RENEW SOON!"))
			Expect(report.Annotate(byName["gone.example"], now)).To(ContainSubstring("EXPIRED!"))
			Expect(report.Annotate(byName["late.example"], now)).To(ContainSubstring("(400 days left)"))
			Expect(report.Annotate(byName["late.example"], now)).NotTo(ContainSubstring("RENEW SOON!"))
			Expect(report.Annotate(byName["odd.example"], now)).To(Equal("someday"))
		})

		It("expiring today should be marked expired", func() {
			d := report.Sorted([]types.Domain{{Name: "today.example", Expires: expires(0)}})[0]
			Expect(report.Annotate(d, now)).To(ContainSubstring("EXPIRED!"))
		})
	})

	Describe("upcoming renewals", func() {
		It("upcoming renewals should correctly", func() {
			sorted := report.Sorted(domains)
			upcoming := report.Upcoming(sorted, now)
			Expect(upcoming).To(HaveLen(1))
			Expect(upcoming[0].Name).To(Equal("soon.example"))
		})

		It("window boundaries should correctly", func() {
			cases := []struct {
				days   int
				expect bool
			}{
				{0, false},
				{1, true},
				{90, true},
				{91, false},
			}
			for _, c := range cases {
				sorted := report.Sorted([]types.Domain{{Name: "b.example", Expires: expires(c.days)}})
				if c.expect {
					Expect(report.Upcoming(sorted, now)).To(HaveLen(1))
				} else {
					Expect(report.Upcoming(sorted, now)).To(BeEmpty())
				}
			}
		})
	})

	Describe("statistics", func() {
		It("statistics should correctly", func() {
			s := report.Tally(domains)
			Expect(s.Total).To(Equal(4))
			Expect(s.AutoRenew).To(Equal(1))
			Expect(s.Locked).To(Equal(1))
			Expect(s.WhoisGuard).To(Equal(2))
			Expect(s.Percent(s.AutoRenew)).To(Equal("25.0%"))
			Expect(s.Percent(s.WhoisGuard)).To(Equal("50.0%"))
		})

		It("zero total should not divide", func() {
			s := report.Tally(nil)
			Expect(s.Total).To(Equal(0))
			Expect(s.Percent(s.AutoRenew)).To(Equal("N/A"))
		})
	})

	Describe("renewal calendar", func() {
		It("same month should share one group", func() {
			sorted := report.Sorted([]types.Domain{
				{Name: "a.example", Expires: "03/15/2026"},
				{Name: "b.example", Expires: "03/02/2026"},
			})
			groups := report.Calendar(sorted)
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Label).To(Equal("March 2026"))
			Expect(groups[0].Domains).To(HaveLen(2))
			// within-group order follows the sorted listing.
			Expect(groups[0].Domains[0].Name).To(Equal("b.example"))
		})

		It("groups should order by year then month", func() {
			sorted := report.Sorted([]types.Domain{
				{Name: "a.example", Expires: "01/10/2027"},
				{Name: "b.example", Expires: "12/10/2025"},
			})
			groups := report.Calendar(sorted)
			Expect(groups).To(HaveLen(2))
			Expect(groups[0].Label).To(Equal("December 2025"))
			Expect(groups[1].Label).To(Equal("January 2027"))
		})

		It("unparseable dates should belong to no group", func() {
			sorted := report.Sorted([]types.Domain{
				{Name: "a.example", Expires: "03/15/2026"},
				{Name: "odd.example", Expires: "someday"},
			})
			groups := report.Calendar(sorted)
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Domains).To(HaveLen(1))
		})
	})

	Describe("full report", func() {
		It("full report should correctly", func() {
			buf := &bytes.Buffer{}
			r := &report.Reporter{Out: buf, Now: now}
			r.Write([]types.Domain{
				{Name: "soon.example", Expires: expires(15), AutoRenew: true},
				{Name: "gone.example", Expires: expires(-400)},
			}, &types.Paging{TotalItems: 2, CurrentPage: 1, PageSize: 100})

			out := buf.String()
			Expect(out).To(ContainSubstring("Total Items: 2"))
			Expect(out).To(ContainSubstring("RENEW SOON!"))
			Expect(out).To(ContainSubstring("EXPIRED!"))

			// upcoming section lists only the domain inside the window.
			idx := bytes.Index(buf.Bytes(), []byte("--- Upcoming Renewals"))
			end := bytes.Index(buf.Bytes(), []byte("--- Domain Statistics"))
			Expect(idx).To(BeNumerically(">", 0))
			Expect(end).To(BeNumerically(">", idx))
			section := string(buf.Bytes()[idx:end])
			Expect(section).To(ContainSubstring("soon.example"))
			Expect(section).NotTo(ContainSubstring("gone.example"))
		})

		It("empty portfolio should degrade to a notice", func() {
			buf := &bytes.Buffer{}
			r := &report.Reporter{Out: buf, Now: now}
			r.Write(nil, nil)
			Expect(buf.String()).To(ContainSubstring("No domains found"))
		})
	})
})
