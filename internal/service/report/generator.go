package report

import (
	"fmt"
	"strconv"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/report"
)

type rule struct {
	matches  func(m report.Metrics) bool
	rating   report.Rating
	template func(m report.Metrics) string
}

// rules are evaluated in order; the first match wins and the last rule
// matches everything.
var rules = []rule{
	{
		matches: func(m report.Metrics) bool {
			return m.PerformanceScore >= 90 && m.WorkedHours >= 160 &&
				m.TotalLeaveTaken <= 10 && m.OvertimeApproved >= 20
		},
		rating: report.RatingExcellent,
		template: func(m report.Metrics) string {
			return fmt.Sprintf("The employee has far exceeded expectations, logging [%s] highly productive hours that have significantly advanced key projects. They earned an exceptional performance score of [%d]%%, consistently delivering work of the highest quality and often going above and beyond their core duties. Their leave taken [%d] days was well-planned and never disrupted operations. Furthermore, they contributed a substantial [%s] hours of approved overtime, showcasing extraordinary dedication and commitment to the team's success.\nOverall Rating: Exceeds Expectations",
				formatHours(m.WorkedHours), m.PerformanceScore, m.TotalLeaveTaken, formatHours(m.OvertimeApproved))
		},
	},
	{
		matches: func(m report.Metrics) bool {
			return m.PerformanceScore >= 75 && m.WorkedHours >= 140 && m.TotalLeaveTaken <= 15
		},
		rating: report.RatingGood,
		template: func(m report.Metrics) string {
			return fmt.Sprintf("This employee has consistently met their required hours, completing [%s] hours of work this period. They achieved a solid performance score of [%d]%%, reliably meeting all their key responsibilities and objectives. Their leave usage [%d] days was managed responsibly with adequate notice. A moderate amount of approved overtime [%s] hours demonstrates a willingness to support the team during busy periods.\nOverall Rating: Meets Expectations",
				formatHours(m.WorkedHours), m.PerformanceScore, m.TotalLeaveTaken, formatHours(m.OvertimeApproved))
		},
	},
	{
		matches: func(m report.Metrics) bool {
			return m.PerformanceScore >= 60 && m.WorkedHours >= 120
		},
		rating: report.RatingBad,
		template: func(m report.Metrics) string {
			return fmt.Sprintf("The employee's total worked hours of [%s] are below the expected threshold, impacting team output. Their performance score of [%d]%% is subpar and falls short of established goals, highlighting several key areas requiring immediate improvement. While their total leave taken [%d] days was within policy, its timing has occasionally disrupted workflow. The limited approved overtime of [%s] hours shows a lack of voluntary contribution to pressing deadlines.\nOverall Rating: Needs Improvement",
				formatHours(m.WorkedHours), m.PerformanceScore, m.TotalLeaveTaken, formatHours(m.OvertimeApproved))
		},
	},
	{
		matches: func(report.Metrics) bool { return true },
		rating:  report.RatingVeryBad,
		template: func(m report.Metrics) string {
			return fmt.Sprintf("This employee has worked only [%s] hours against their target, demonstrating a significant shortfall in their core contribution. Their performance score of [%d]%% is critically low and fails to meet even the most fundamental job requirements. Furthermore, they have exceeded their allotted leave by [%d] days, indicating poor time management and a lack of commitment. The minimal overtime worked ([%s] hours) does not compensate for these substantial deficiencies.\nOverall Rating: Unsatisfactory",
				formatHours(m.WorkedHours), m.PerformanceScore, m.TotalLeaveTaken, formatHours(m.OvertimeApproved))
		},
	},
}

// Generate derives the rating and narrative from the four metrics. It is a
// pure function of its input.
func Generate(m report.Metrics) (report.Rating, string) {
	for _, r := range rules {
		if r.matches(m) {
			return r.rating, r.template(m)
		}
	}
	// unreachable, the last rule always matches
	last := rules[len(rules)-1]
	return last.rating, last.template(m)
}

// formatHours renders hour totals without trailing zeros, so 160 reads
// "160" and 160.5 reads "160.5".
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
