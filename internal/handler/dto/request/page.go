package request

// PageQuery is bound from ?cursor=&limit= on list endpoints.
type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type RecordListQuery struct {
	PageQuery
	Genre        string `form:"genre"`
	Artist       string `form:"artist"`
	Q            string `form:"q"`
	InStockOnly  bool   `form:"in_stock"`
	FeaturedOnly bool   `form:"featured"`
}
