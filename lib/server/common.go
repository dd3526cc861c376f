package server

type Filters struct {
	FilterName   string `form:"name"`
	FilterFamily string `form:"family"`
}

type ListParams struct {
	GridParams
	Filters
}

type StatsParams struct {
	Filters
}
