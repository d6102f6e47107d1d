package request

// ServiceRequest is the catalog form payload for create and update.
type ServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours"`
}
