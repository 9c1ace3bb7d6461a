package dto

type BoardDailyRequest struct {
	ProjectId int  `query:"project_id"`
	Window    *int `query:"window"`
}

type BoardRollupRequest struct {
	ProjectId int  `query:"project_id"`
	Window    *int `query:"window"`
}

type BoardExportRequest struct {
	ProjectId int    `query:"project_id"`
	Window    *int   `query:"window"`
	Format    string `query:"format" validate:"required"`
}
