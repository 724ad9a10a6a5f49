package model

// MonthlyStats summarizes a supervisor's activity for one month.
type MonthlyStats struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	Supervisions    int `json:"supervisions"`
	AdditionalTasks int `json:"additionalTasks"`
}

// YearlyStats summarizes a supervisor's activity for one year.
// Schools counts the distinct schools visited; MonthlyAverage and
// CompletionRate are rounded to the nearest integer.
type YearlyStats struct {
	TotalSupervisions int `json:"totalSupervisions"`
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	Schools           int `json:"schools"`
	MonthlyAverage    int `json:"monthlyAverage"`
	CompletionRate    int `json:"completionRate"`
}
