package models

// StatCard is one overview tile on the dashboard landing page.
type StatCard struct {
	Title  string  `json:"title"`  // Card heading
	Value  int     `json:"value"`  // Current count
	Change float64 `json:"change"` // Percent change since last month
	Route  string  `json:"route,omitempty"`
}

// CategoryPosts is one bar of the posts-per-category chart.
type CategoryPosts struct {
	Category string `json:"category"`
	Posts    int    `json:"posts"`
}

// ReportSlice is one slice of the reports pie chart.
type ReportSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyUsers is one point of the active-users line chart.
type MonthlyUsers struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

// ChartData bundles every chart series served to the analytics page.
type ChartData struct {
	Posts   []CategoryPosts `json:"dataPosts"`
	Reports []ReportSlice   `json:"dataReports"`
	Users   []MonthlyUsers  `json:"dataUsers"`
}
