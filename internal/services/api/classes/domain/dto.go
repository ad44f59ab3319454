package domain

// CreateClassInput is the body of a create request
type CreateClassInput struct {
	CourseID int    `json:"course_id" validate:"required,min=1" example:"7"`
	Week     int    `json:"week" validate:"min=0" example:"3"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	Day      string `json:"day,omitempty" validate:"omitempty,notblank,max=16" example:"Friday"`
}

// UpdateStatusInput is the body of a status change
type UpdateStatusInput struct {
	Status Status `json:"status" validate:"required,oneof=Empty Rescheduled Completed Absent Cancelled" example:"Completed"`
}
