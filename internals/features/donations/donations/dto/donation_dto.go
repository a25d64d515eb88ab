package dto

type CreateDonationDTO struct {
	DonorID     *string `json:"donor_id" validate:"omitempty,uuid4"`
	ProjectID   *string `json:"project_id" validate:"omitempty,uuid4"`
	DonorName   string  `json:"donor_name" validate:"required,min=2,max=100"`
	DonorEmail  string  `json:"donor_email" validate:"omitempty,email"`
	AmountCents int64   `json:"amount_cents" validate:"required,gt=0"`
	Message     string  `json:"message" validate:"omitempty,max=500"`
	// online donations get a Snap token; offline ones are recorded as paid
	Method string `json:"method" validate:"required,oneof=online cash transfer"`
}
