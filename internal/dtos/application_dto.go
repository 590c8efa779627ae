package dtos

// ApplicationRequest arrives as multipart form data alongside the resume
// file, hence the form tags.
type ApplicationRequest struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	CoverLetter string `form:"coverLetter" json:"coverLetter"`
	Phone       string `form:"phone" json:"phone"`
	Address     string `form:"address" json:"address"`
	JobID       string `form:"jobId" json:"jobId"`
}
