package dto

import "janseva/internal/models"

type CreateSchemeRequest struct {
	SchemeName        string   `json:"scheme_name"`
	Category          string   `json:"category"`
	ShortDescription  string   `json:"short_description"`
	Description       string   `json:"description"`
	Eligibility       string   `json:"eligibility"`
	Benefits          string   `json:"benefits"`
	DocumentsRequired []string `json:"documents_required"`
	HowToApply        string   `json:"how_to_apply"`
	OfficialLink      string   `json:"official_link"`
	Keywords          []string `json:"keywords"`
	State             string   `json:"state"`
}

type UpdateSchemeRequest struct {
	SchemeName        *string   `json:"scheme_name"`
	Category          *string   `json:"category"`
	ShortDescription  *string   `json:"short_description"`
	Description       *string   `json:"description"`
	Eligibility       *string   `json:"eligibility"`
	Benefits          *string   `json:"benefits"`
	DocumentsRequired *[]string `json:"documents_required"`
	HowToApply        *string   `json:"how_to_apply"`
	OfficialLink      *string   `json:"official_link"`
	Keywords          *[]string `json:"keywords"`
	State             *string   `json:"state"`
}

type SchemeListResponse struct {
	Total   int64            `json:"total"`
	Results []*models.Scheme `json:"results"`
}
