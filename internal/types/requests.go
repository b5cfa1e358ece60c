package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest is the request body for POST /analyze. Either a raw text
// blob to be parsed into a posting, or pre-extracted structured fields.
type AnalyzeRequest struct {
	Text          string `json:"text,omitempty" validate:"required_without=Description"`
	Title         string `json:"title,omitempty"`
	Company       string `json:"company,omitempty"`
	CompanyDomain string `json:"company_domain,omitempty" validate:"omitempty,fqdn"`
	Location      string `json:"location,omitempty"`
	Description   string `json:"description,omitempty" validate:"required_without=Text"`
	Requirements  string `json:"requirements,omitempty"`
	Salary        string `json:"salary,omitempty"`
}

// AnalyzeURLRequest is the request body for POST /analyze/url.
type AnalyzeURLRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	AccessKey string `json:"access_key" validate:"required,min=8"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeURLRequest using the validator.
func (r *AnalyzeURLRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
