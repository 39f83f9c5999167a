package commerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"atelier-storefront/internal/model"
	"atelier-storefront/pkg/apierror"
)

// userError is the structured error shape every mutation returns alongside its
// payload. Only the first entry is ever surfaced to the user.
type userError struct {
	Code    string   `json:"code"`
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func firstUserError(errs []userError) error {
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]
	return apierror.FromBackend(first.Code, strings.Join(first.Field, "."), first.Message)
}

type wireMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// parseCents converts the backend's decimal money string into cents.
// "29.95" -> 2995, "12" -> 1200. Extra fractional digits are truncated.
func parseCents(amount string) (int64, error) {
	trimmed := strings.TrimSpace(amount)
	negative := strings.HasPrefix(trimmed, "-")

	whole, frac, _ := strings.Cut(trimmed, ".")
	if whole == "" || whole == "-" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	if negative {
		if units > 0 {
			units = -units
		}
		return units*100 - cents, nil
	}
	return units*100 + cents, nil
}

type wireSelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type wireVariant struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	AvailableForSale bool                 `json:"availableForSale"`
	Price            wireMoney            `json:"price"`
	SelectedOptions  []wireSelectedOption `json:"selectedOptions"`
}

type wireProduct struct {
	ID            string `json:"id"`
	Handle        string `json:"handle"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FeaturedImage *struct {
		URL string `json:"url"`
	} `json:"featuredImage"`
	Variants struct {
		Edges []struct {
			Node wireVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (p *wireProduct) toModel() (*model.Product, error) {
	out := &model.Product{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Description: p.Description,
	}
	if p.FeaturedImage != nil {
		out.ImageURL = p.FeaturedImage.URL
	}

	for _, edge := range p.Variants.Edges {
		v := edge.Node
		cents, err := parseCents(v.Price.Amount)
		if err != nil {
			return nil, err
		}

		variant := model.Variant{
			ID:         v.ID,
			Title:      v.Title,
			PriceCents: cents,
			Currency:   v.Price.CurrencyCode,
			Available:  v.AvailableForSale,
		}
		for _, opt := range v.SelectedOptions {
			variant.Options = append(variant.Options, model.SelectedOption{Name: opt.Name, Value: opt.Value})
		}
		out.Variants = append(out.Variants, variant)
	}

	return out, nil
}

type wireCustomer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
}

func (c *wireCustomer) toModel() *model.Customer {
	display := c.DisplayName
	if display == "" {
		display = strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	if display == "" {
		display = c.Email
	}

	return &model.Customer{
		ID:          c.ID,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DisplayName: display,
		Phone:       c.Phone,
	}
}

type wireAccessToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (t *wireAccessToken) toModel() *model.AccessToken {
	return &model.AccessToken{Token: t.AccessToken, ExpiresAt: t.ExpiresAt}
}

type wireAddress struct {
	ID       string `json:"id"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

func (a *wireAddress) toModel() model.Address {
	return model.Address{
		ID:       a.ID,
		Address1: a.Address1,
		Address2: a.Address2,
		City:     a.City,
		Province: a.Province,
		Zip:      a.Zip,
		Country:  a.Country,
		Phone:    a.Phone,
	}
}
