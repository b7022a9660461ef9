package stripeapi

import (
	"context"
	"net/url"
)

// CheckoutSessionParams are the parameters for creating a Checkout
// Session. CancelURL, SuccessURL and PaymentMethodTypes are required;
// every pointer or slice field left unset is omitted from the encoded
// payload entirely. No validation happens locally, malformed values
// come back as API errors.
type CheckoutSessionParams struct {
	// The URL the customer is directed to if they cancel payment and
	// return to your website.
	CancelURL string `form:"cancel_url"`

	// The URL the customer is directed to after the payment or
	// subscription creation succeeds.
	SuccessURL string `form:"success_url"`

	// The payment method types the session accepts, e.g. card, ideal.
	PaymentMethodTypes []string `form:"payment_method_types"`

	// A unique string to reconcile the session with internal systems,
	// such as a cart or order ID.
	ClientReferenceID *string `form:"client_reference_id"`

	// The ID of an existing customer. When absent a new customer is
	// created for the session.
	Customer *string `form:"customer"`

	// Prefills the customer email on the payment page. Once the
	// session completes, use the customer field instead.
	CustomerEmail *string `form:"customer_email"`

	// Whether Checkout collects the customer's billing address,
	// auto or required.
	BillingAddressCollection *BillingAddressCollection `form:"billing_address_collection"`

	// The items the customer is purchasing.
	LineItems []*CheckoutSessionLineItemParams `form:"line_items"`

	Locale *CheckoutSessionLocale `form:"locale"`

	Mode *CheckoutSessionMode `form:"mode"`

	// SubmitType can only be set on sessions using line items, not on
	// subscription sessions.
	SubmitType *CheckoutSessionSubmitType `form:"submit_type"`

	// Key-value pairs stored on the session object.
	Metadata map[string]string `form:"metadata"`
}

// CheckoutSessionLineItemParams is one purchasable entry in the
// session. The full API accepts exactly one of an inline price_data, a
// referenced price, or a flat amount; only inline price data is
// modeled here and supplying another variant through metadata or
// extensions remains the caller's responsibility.
type CheckoutSessionLineItemParams struct {
	// The quantity being purchased.
	Quantity int64 `form:"quantity"`

	// Inline definition of the price charged for this item.
	PriceData *PriceDataParams `form:"price_data"`

	// Display description for the line item.
	Description *string `form:"description"`

	// Image URLs shown for this line item.
	Images []string `form:"images"`

	// Tax rate IDs applied depending on the customer's billing or
	// shipping address.
	DynamicTaxRates []string `form:"dynamic_tax_rates"`
}

// PriceDataParams generates a new price inline for a line item.
type PriceDataParams struct {
	// The amount collected per unit, in the currency's minor units.
	UnitAmount int64 `form:"unit_amount"`

	// Three-letter ISO 4217 currency code, lowercase.
	Currency string `form:"currency"`

	// Display metadata for the product being sold.
	ProductData *ProductDataParams `form:"product_data"`
}

// ProductDataParams is the display metadata for an inline price.
type ProductDataParams struct {
	Name        string  `form:"name"`
	Description *string `form:"description"`
}

// CreateCheckoutSession creates a new Checkout Session. The session it
// returns is a remote resource; its lifecycle (completion, expiry) is
// reported back through webhooks.
func (c *Client) CreateCheckoutSession(
	ctx context.Context,
	params *CheckoutSessionParams,
) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.PostForm(ctx, "/v1/checkout/sessions", params, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetCheckoutSession retrieves an existing Checkout Session by ID.
func (c *Client) GetCheckoutSession(
	ctx context.Context,
	id string,
) (*CheckoutSession, error) {
	var session CheckoutSession
	path := "/v1/checkout/sessions/" + url.PathEscape(id)
	if err := c.Get(ctx, path, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ExpireCheckoutSession expires an open Checkout Session so the
// customer can no longer complete it.
func (c *Client) ExpireCheckoutSession(
	ctx context.Context,
	id string,
) (*CheckoutSession, error) {
	var session CheckoutSession
	path := "/v1/checkout/sessions/" + url.PathEscape(id) + "/expire"
	if err := c.PostForm(ctx, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
