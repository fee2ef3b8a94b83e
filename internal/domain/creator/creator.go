// Package creator holds creators and the payment methods they accept.
package creator

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

var (
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrSlugTaken             = errors.New("creator slug already exists")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a display name: accents are stripped,
// everything else outside [a-z0-9] collapses to single hyphens.
func Slugify(name string) string {
	decomposed := norm.NFKD.String(strings.ToLower(name))
	var b strings.Builder
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return strings.Trim(nonSlugChars.ReplaceAllString(b.String(), "-"), "-")
}

type Creator struct {
	id             uint
	slug           string
	displayName    string
	webURL         string
	feedURL        *string
	description    string
	paymentMethods []*PaymentMethod
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCreator creates a creator. An empty slug is derived from displayName.
func NewCreator(slug, displayName, webURL string, feedURL *string, description string) (*Creator, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if slug == "" {
		slug = Slugify(displayName)
	}
	if slug == "" || slug != Slugify(slug) {
		return nil, fmt.Errorf("invalid slug %q", slug)
	}
	if err := validateURL(webURL); err != nil {
		return nil, fmt.Errorf("web url: %w", err)
	}
	if feedURL != nil {
		if err := validateURL(*feedURL); err != nil {
			return nil, fmt.Errorf("feed url: %w", err)
		}
	}

	now := biztime.NowUTC()
	return &Creator{
		slug:        slug,
		displayName: displayName,
		webURL:      webURL,
		feedURL:     feedURL,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type CreatorReconstructParams struct {
	ID             uint
	Slug           string
	DisplayName    string
	WebURL         string
	FeedURL        *string
	Description    string
	PaymentMethods []*PaymentMethod
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructCreatorWithParams(p CreatorReconstructParams) *Creator {
	return &Creator{
		id:             p.ID,
		slug:           p.Slug,
		displayName:    p.DisplayName,
		webURL:         p.WebURL,
		feedURL:        p.FeedURL,
		description:    p.Description,
		paymentMethods: p.PaymentMethods,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}

// AddPaymentMethod attaches a payment method. Duplicate variants with the
// same identity are refused.
func (c *Creator) AddPaymentMethod(pm *PaymentMethod) error {
	for _, existing := range c.paymentMethods {
		if existing.Kind().Type() == pm.Kind().Type() && existing.Kind().HTMLURL() == pm.Kind().HTMLURL() {
			return fmt.Errorf("creator %s already has %s", c.slug, pm.Kind().DisplayName())
		}
	}
	c.paymentMethods = append(c.paymentMethods, pm)
	c.updatedAt = biztime.NowUTC()
	return nil
}

// PaymentMethod returns the creator's payment method with the given id.
func (c *Creator) PaymentMethod(id uint) (*PaymentMethod, error) {
	for _, pm := range c.paymentMethods {
		if pm.ID() == id {
			return pm, nil
		}
	}
	return nil, ErrPaymentMethodNotFound
}

func (c *Creator) SetID(id uint) {
	c.id = id
}

func (c *Creator) ID() uint {
	return c.id
}

func (c *Creator) Slug() string {
	return c.slug
}

func (c *Creator) DisplayName() string {
	return c.displayName
}

func (c *Creator) WebURL() string {
	return c.webURL
}

func (c *Creator) FeedURL() *string {
	return c.feedURL
}

// Description is raw markdown.
func (c *Creator) Description() string {
	return c.description
}

func (c *Creator) PaymentMethods() []*PaymentMethod {
	return c.paymentMethods
}

func (c *Creator) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Creator) UpdatedAt() time.Time {
	return c.updatedAt
}
