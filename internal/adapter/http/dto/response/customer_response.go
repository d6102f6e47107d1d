package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"license_plate"`
}

type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Vehicle   VehicleResponse `json:"vehicle"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Vehicle: VehicleResponse{
			ID:           c.Vehicle.ID,
			Make:         c.Vehicle.Make,
			Model:        c.Vehicle.Model,
			Year:         c.Vehicle.Year,
			VIN:          c.Vehicle.VIN,
			LicensePlate: c.Vehicle.LicensePlate,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
