package handler

import "github.com/shopkeep/storefront/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type meResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type statusRequest struct {
	Status domain.ProductStatus `json:"status"`
}

type successResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product,omitempty"`
}

type maintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}

type maintenanceResponse struct {
	Maintenance bool `json:"maintenance"`
}

type announcementRequest struct {
	Text string `json:"text"`
}

type announcementResponse struct {
	Text string `json:"text"`
}
