package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type ServiceResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	EstimatedHours float64   `json:"estimated_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Price:          s.Price,
		EstimatedHours: s.EstimatedHours,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
