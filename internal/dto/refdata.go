package dto

type RefdataRefreshRequest struct {
	Force bool `json:"force" form:"force" query:"force"`
}
