package creator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method type")

// Payment method type discriminants as stored in payment_methods.type.
const (
	TypeGitHubSponsors = "payment_methods_github_sponsors"
	TypePatreon        = "payment_methods_patreon"
)

// PaymentMethodKind is the per-variant behavior of a payment method.
type PaymentMethodKind interface {
	Type() string
	DisplayName() string
	HTMLURL() string
	MinimumAmount() int64
	// AcceptsAmount reports whether the platform can send this amount, in
	// the smallest currency unit.
	AcceptsAmount(amount int64) bool
	Validate() error
}

// GitHubSponsors takes custom amounts in whole dollars from one dollar.
type GitHubSponsors struct {
	GitHubID    int64  `json:"github_id"`
	GitHubLogin string `json:"github_login"`
}

func (GitHubSponsors) Type() string         { return TypeGitHubSponsors }
func (GitHubSponsors) DisplayName() string  { return "GitHub Sponsors" }
func (GitHubSponsors) MinimumAmount() int64 { return 100 }

func (g GitHubSponsors) HTMLURL() string {
	return "https://github.com/sponsors/" + g.GitHubLogin
}

func (g GitHubSponsors) AcceptsAmount(amount int64) bool {
	return amount >= g.MinimumAmount() && amount%100 == 0
}

func (g GitHubSponsors) Validate() error {
	if g.GitHubID <= 0 {
		return fmt.Errorf("github_id must be positive")
	}
	if strings.TrimSpace(g.GitHubLogin) == "" {
		return fmt.Errorf("github_login is required")
	}
	return nil
}

// Patreon takes any amount from one dollar.
type Patreon struct {
	CampaignID int64  `json:"campaign_id"`
	Vanity     string `json:"vanity"`
}

func (Patreon) Type() string         { return TypePatreon }
func (Patreon) DisplayName() string  { return "Patreon" }
func (Patreon) MinimumAmount() int64 { return 100 }

func (p Patreon) HTMLURL() string {
	return "https://www.patreon.com/" + p.Vanity
}

func (p Patreon) AcceptsAmount(amount int64) bool {
	return amount >= p.MinimumAmount()
}

func (p Patreon) Validate() error {
	if p.CampaignID <= 0 {
		return fmt.Errorf("campaign_id must be positive")
	}
	if strings.TrimSpace(p.Vanity) == "" {
		return fmt.Errorf("vanity is required")
	}
	return nil
}

// PaymentMethod is one row of the payment_methods table: common fields plus
// the variant selected by its type.
type PaymentMethod struct {
	id        uint
	creatorID uint
	kind      PaymentMethodKind
	createdAt time.Time
}

func NewPaymentMethod(creatorID uint, kind PaymentMethodKind) (*PaymentMethod, error) {
	if kind == nil {
		return nil, ErrUnknownPaymentMethod
	}
	if err := kind.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", kind.DisplayName(), err)
	}
	return &PaymentMethod{
		creatorID: creatorID,
		kind:      kind,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructPaymentMethod(id, creatorID uint, kind PaymentMethodKind, createdAt time.Time) *PaymentMethod {
	return &PaymentMethod{id: id, creatorID: creatorID, kind: kind, createdAt: createdAt}
}

// NewKind returns the zero variant for a type discriminant, ready for
// decoding its details into.
func NewKind(typ string) (PaymentMethodKind, error) {
	switch typ {
	case TypeGitHubSponsors:
		return &GitHubSponsors{}, nil
	case TypePatreon:
		return &Patreon{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, typ)
	}
}

func (pm *PaymentMethod) SetID(id uint) {
	pm.id = id
}

func (pm *PaymentMethod) SetCreatorID(id uint) {
	pm.creatorID = id
}

func (pm *PaymentMethod) ID() uint {
	return pm.id
}

func (pm *PaymentMethod) CreatorID() uint {
	return pm.creatorID
}

func (pm *PaymentMethod) Kind() PaymentMethodKind {
	return pm.kind
}

func (pm *PaymentMethod) CreatedAt() time.Time {
	return pm.createdAt
}
