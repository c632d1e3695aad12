package dto

const DefaultStyle = "Uwu"

type ProcessArticleRequest struct {
	URL   string `json:"url" binding:"required"`
	Style string `json:"style"`
}
