package category

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Slug        string  `json:"slug"`
}

type CreateCategoryParams struct {
	Name        string
	Description *string
	Slug        string
}
