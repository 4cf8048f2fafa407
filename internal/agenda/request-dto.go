package agenda

type ToggleSectionRequest struct {
	Title string `json:"title" binding:"required"`
}
