package professionalservice

// Professional модель профессионала из ProfessionalService
type Professional struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Specialty string  `json:"specialty"`
	License   *string `json:"license,omitempty"`
	Active    bool    `json:"active"`
}

// ErrorResponse модель ошибки от ProfessionalService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
