package intervention

import "time"

const (
	week           = 7 * 24 * time.Hour
	planItems      = 3
	reviewWeeks    = 8
	defaultOwner   = "Team Lead"
	reviewTitle    = "Review Progress"
	implementTitle = "Implement: "
)

type ItemStatus string

const (
	Pending    ItemStatus = "pending"
	InProgress ItemStatus = "in_progress"
	Completed  ItemStatus = "completed"
)

type ActionItem struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Owner        string     `json:"owner"`
	Deadline     time.Time  `json:"deadline"`
	Dependencies []string   `json:"dependencies"`
	Status       ItemStatus `json:"status"`
}

type ActionPlan struct {
	Goal           string       `json:"goal"`
	Items          []ActionItem `json:"items"`
	TimelineWeeks  int          `json:"timeline_weeks"`
	SuccessMetrics []string     `json:"success_metrics"`
}

// GeneratePlan turns the top three recommendations into fortnightly items
// followed by a review at week eight that depends on each of them.
func GeneratePlan(goal string, recs []Recommendation, now time.Time) ActionPlan {
	if len(recs) > planItems {
		recs = recs[:planItems]
	}
	items := make([]ActionItem, 0, len(recs)+1)
	deps := make([]string, 0, len(recs))
	for i, r := range recs {
		title := implementTitle + r.Title
		items = append(items, ActionItem{
			Title:        title,
			Description:  r.Description,
			Owner:        defaultOwner,
			Deadline:     now.Add(time.Duration((i+1)*2) * week),
			Dependencies: []string{},
			Status:       Pending,
		})
		deps = append(deps, title)
	}
	items = append(items, ActionItem{
		Title:        reviewTitle,
		Description:  "Assess implementation progress and adjust plan",
		Owner:        defaultOwner,
		Deadline:     now.Add(reviewWeeks * week),
		Dependencies: deps,
		Status:       Pending,
	})
	return ActionPlan{
		Goal:          goal,
		Items:         items,
		TimelineWeeks: reviewWeeks,
		SuccessMetrics: []string{
			"Improved team satisfaction scores",
			"Increased productivity metrics",
			"Better communication ratings",
		},
	}
}

type Progress struct {
	TotalItems           int     `json:"total_items"`
	Completed            int     `json:"completed"`
	InProgress           int     `json:"in_progress"`
	Pending              int     `json:"pending"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

func TrackProgress(p ActionPlan) Progress {
	out := Progress{TotalItems: len(p.Items)}
	for _, it := range p.Items {
		switch it.Status {
		case Completed:
			out.Completed++
		case InProgress:
			out.InProgress++
		}
	}
	out.Pending = out.TotalItems - out.Completed - out.InProgress
	if out.TotalItems > 0 {
		out.CompletionPercentage = float64(out.Completed) / float64(out.TotalItems) * 100
	}
	return out
}
