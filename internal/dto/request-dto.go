package dto

// UserIDParam - /users/:id
type UserIDParam struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

// BestRouteQuery - /routes/best?userId=
type BestRouteQuery struct {
	UserID int64 `query:"userId" validate:"required,gt=0"`
}
