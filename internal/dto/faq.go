package dto

import "janseva/internal/models"

type CreateFaqRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Tags       []string `json:"tags"`
	Keywords   []string `json:"keywords"`
	Department string   `json:"department"`
}

type UpdateFaqRequest struct {
	Question   *string   `json:"question"`
	Answer     *string   `json:"answer"`
	Tags       *[]string `json:"tags"`
	Keywords   *[]string `json:"keywords"`
	Department *string   `json:"department"`
}

type FaqListResponse struct {
	Total   int64         `json:"total"`
	Results []*models.Faq `json:"results"`
}
