package models

// FormInputs are the three values read from the form at submission time.
type FormInputs struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Password string `validate:"required"`
}

// Request converts the form values into the payload sent to the backend.
func (f FormInputs) Request() CheckRequest {
	return CheckRequest{Name: f.Name, Phone: f.Phone, Password: f.Password}
}

// CheckRequest is the JSON body posted to the breach-checking backend.
type CheckRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Inputs converts a decoded request back into form values.
func (r CheckRequest) Inputs() FormInputs {
	return FormInputs{Name: r.Name, Phone: r.Phone, Password: r.Password}
}
