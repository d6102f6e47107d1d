package entities

import "time"

// Vehicle is owned exclusively by one Customer. It has no independent
// lifecycle: it is created, updated and deleted together with its owner,
// and is embedded in the customer record in storage.
type Vehicle struct {
	ID           string `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"license_plate"`
}

// Customer is a shop customer (cliente) with exactly one vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quotes reference customers by id only; deleting a customer is refused
// while any quote still points at it.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Vehicle   Vehicle   `json:"vehicle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
