package bookings

type AdjustProductRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Delta     int `json:"delta" binding:"required"`
}
