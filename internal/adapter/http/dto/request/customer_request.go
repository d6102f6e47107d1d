package request

// VehicleRequest is the vehicle section of the customer form. Year is a
// free-form string, matching entries like "2020/2021".
type VehicleRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"license_plate"`
}

// CustomerRequest is the customer form payload for create and update. The
// vehicle always travels with its owner.
type CustomerRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address string         `json:"address"`
	Vehicle VehicleRequest `json:"vehicle"`
}
