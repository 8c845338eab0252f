package dto

// ListQuery binds ?offset=&limit= on list endpoints. Range clamping happens in the usecase.
type ListQuery struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}
