package dtos

type JobPostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Location    string   `json:"location"`
	FixedSalary *float64 `json:"fixedSalary"`
	SalaryFrom  *float64 `json:"salaryFrom"`
	SalaryTo    *float64 `json:"salaryTo"`
}

// JobUpdateRequest is a partial update: nil means "leave unchanged". Salary
// fields travel as a group, see JobService.Update.
type JobUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Country     *string  `json:"country"`
	City        *string  `json:"city"`
	Location    *string  `json:"location"`
	FixedSalary *float64 `json:"fixedSalary"`
	SalaryFrom  *float64 `json:"salaryFrom"`
	SalaryTo    *float64 `json:"salaryTo"`
	Expired     *bool    `json:"expired"`
}

type JobExtractionRequest struct {
	RawContent string `json:"raw_content" binding:"required"`
	URL        string `json:"url"`
}
