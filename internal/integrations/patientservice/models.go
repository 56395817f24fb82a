package patientservice

// Patient модель пациента из PatientService
type Patient struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Document  string  `json:"document"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ErrorResponse модель ошибки от PatientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
