package dto

import (
	"time"

	"github.com/creatorfund/creatorfund/internal/domain/creator"
)

type CreateCreatorRequest struct {
	Slug        string  `json:"slug" yaml:"slug" validate:"omitempty,slug,max=255"`
	DisplayName string  `json:"display_name" yaml:"display_name" validate:"required,max=255"`
	WebURL      string  `json:"web_url" yaml:"web_url" validate:"required,url,max=2048"`
	FeedURL     *string `json:"feed_url,omitempty" yaml:"feed_url" validate:"omitempty,url,max=2048"`
	Description string  `json:"description" yaml:"description" validate:"max=20000"`

	PaymentMethods []AddPaymentMethodRequest `json:"payment_methods,omitempty" yaml:"payment_methods" validate:"dive"`
}

// AddPaymentMethodRequest carries the fields of every variant; Type picks
// which of them apply.
type AddPaymentMethodRequest struct {
	Type        string `json:"type" yaml:"type" validate:"required,oneof=payment_methods_github_sponsors payment_methods_patreon"`
	GitHubID    int64  `json:"github_id,omitempty" yaml:"github_id" validate:"required_if=Type payment_methods_github_sponsors"`
	GitHubLogin string `json:"github_login,omitempty" yaml:"github_login" validate:"required_if=Type payment_methods_github_sponsors,max=39"`
	CampaignID  int64  `json:"campaign_id,omitempty" yaml:"campaign_id" validate:"required_if=Type payment_methods_patreon"`
	Vanity      string `json:"vanity,omitempty" yaml:"vanity" validate:"required_if=Type payment_methods_patreon,max=255"`
}

// Kind builds the payment method variant named by Type.
func (r AddPaymentMethodRequest) Kind() (creator.PaymentMethodKind, error) {
	switch r.Type {
	case creator.TypeGitHubSponsors:
		return creator.GitHubSponsors{GitHubID: r.GitHubID, GitHubLogin: r.GitHubLogin}, nil
	case creator.TypePatreon:
		return creator.Patreon{CampaignID: r.CampaignID, Vanity: r.Vanity}, nil
	default:
		return nil, creator.ErrUnknownPaymentMethod
	}
}

type PaymentMethodDTO struct {
	ID            uint                      `json:"id"`
	Type          string                    `json:"type"`
	DisplayName   string                    `json:"display_name"`
	HTMLURL       string                    `json:"html_url"`
	MinimumAmount int64                     `json:"minimum_amount"`
	Details       creator.PaymentMethodKind `json:"details"`
}

type CreatorDTO struct {
	ID              uint                `json:"id"`
	Slug            string              `json:"slug"`
	DisplayName     string              `json:"display_name"`
	WebURL          string              `json:"web_url"`
	FeedURL         *string             `json:"feed_url,omitempty"`
	Description     string              `json:"description,omitempty"`
	DescriptionHTML string              `json:"description_html,omitempty"`
	PaymentMethods  []*PaymentMethodDTO `json:"payment_methods"`
	CreatedAt       time.Time           `json:"created_at"`
}

func ToPaymentMethodDTO(pm *creator.PaymentMethod) *PaymentMethodDTO {
	kind := pm.Kind()
	return &PaymentMethodDTO{
		ID:            pm.ID(),
		Type:          kind.Type(),
		DisplayName:   kind.DisplayName(),
		HTMLURL:       kind.HTMLURL(),
		MinimumAmount: kind.MinimumAmount(),
		Details:       kind,
	}
}

// ToCreatorDTO maps a creator; descriptionHTML is the rendered description.
func ToCreatorDTO(c *creator.Creator, descriptionHTML string) *CreatorDTO {
	methods := make([]*PaymentMethodDTO, 0, len(c.PaymentMethods()))
	for _, pm := range c.PaymentMethods() {
		methods = append(methods, ToPaymentMethodDTO(pm))
	}
	return &CreatorDTO{
		ID:              c.ID(),
		Slug:            c.Slug(),
		DisplayName:     c.DisplayName(),
		WebURL:          c.WebURL(),
		FeedURL:         c.FeedURL(),
		Description:     c.Description(),
		DescriptionHTML: descriptionHTML,
		PaymentMethods:  methods,
		CreatedAt:       c.CreatedAt(),
	}
}
