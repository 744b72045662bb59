package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"hbb/internal/delivery/http/middleware"
	"hbb/internal/delivery/http/response"
	"hbb/internal/domain/entity"
	"hbb/internal/usecase"
)

// BusinessHandler holds dependencies for business registry handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// businessView is the client-facing shape of a business record.
type businessView struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription"`
	Address          string     `json:"address"`
	Status           string     `json:"status"`
	ContactPhone     string     `json:"contactPhone,omitempty"`
	ContactWhatsApp  string     `json:"contactWhatsapp,omitempty"`
	ContactInstagram string     `json:"contactInstagram,omitempty"`
	ContactTikTok    string     `json:"contactTiktok,omitempty"`
	ContactFacebook  string     `json:"contactFacebook,omitempty"`
	ContactCarousell string     `json:"contactCarousell,omitempty"`
	ContactWebsite   string     `json:"contactWebsite,omitempty"`
	ImageKeys        []string   `json:"imageKeys,omitempty"`
	VideoKey         string     `json:"videoKey,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
}

func newBusinessView(business *entity.Business) *businessView {
	if business == nil {
		return nil
	}

	return &businessView{
		ID:               business.ID,
		OwnerID:          business.OwnerID,
		Name:             business.Name,
		Category:         string(business.Category),
		Description:      business.Description,
		ShortDescription: business.ShortDescription,
		Address:          business.Address,
		Status:           string(business.Status),
		ContactPhone:     business.ContactPhone,
		ContactWhatsApp:  business.ContactWhatsApp,
		ContactInstagram: business.ContactInstagram,
		ContactTikTok:    business.ContactTikTok,
		ContactFacebook:  business.ContactFacebook,
		ContactCarousell: business.ContactCarousell,
		ContactWebsite:   business.ContactWebsite,
		ImageKeys:        business.ImageKeys,
		VideoKey:         business.VideoKey,
		CreatedAt:        business.CreatedAt,
		UpdatedAt:        business.UpdatedAt,
		ApprovedAt:       business.ApprovedAt,
		RejectedAt:       business.RejectedAt,
		RejectionReason:  business.RejectionReason,
	}
}

// Create registers a new business for the signed-in caller. Requires
// authentication.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)

	businessID, err := h.uc.CreateBusiness(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"businessId": businessID}, "Business registered successfully")
}

// Mine returns the caller's business, or null when none exists.
func (h *BusinessHandler) Mine(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	business, err := h.uc.GetMyBusiness(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "")
}

// CanCreate reports whether the caller may register a business.
func (h *BusinessHandler) CanCreate(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	output, err := h.uc.CanCreateBusiness(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
