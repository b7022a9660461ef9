package stripeapi

// CheckoutSessionMode is the mode of a Checkout Session, one of
// payment, setup, or subscription.
type CheckoutSessionMode string

const (
	CheckoutSessionModePayment      CheckoutSessionMode = "payment"
	CheckoutSessionModeSetup        CheckoutSessionMode = "setup"
	CheckoutSessionModeSubscription CheckoutSessionMode = "subscription"
)

// CheckoutSessionSubmitType customizes the text on the Checkout submit
// button. It can only be set on sessions using line items, not on
// subscription sessions.
type CheckoutSessionSubmitType string

const (
	CheckoutSessionSubmitTypeAuto   CheckoutSessionSubmitType = "auto"
	CheckoutSessionSubmitTypeBook   CheckoutSessionSubmitType = "book"
	CheckoutSessionSubmitTypeDonate CheckoutSessionSubmitType = "donate"
	CheckoutSessionSubmitTypePay    CheckoutSessionSubmitType = "pay"
)

// CheckoutSessionLocale is the IETF language tag Checkout is displayed
// in. With auto (or unset) the browser's locale is used.
type CheckoutSessionLocale string

const (
	CheckoutSessionLocaleAuto CheckoutSessionLocale = "auto"
	CheckoutSessionLocaleDA   CheckoutSessionLocale = "da"
	CheckoutSessionLocaleDE   CheckoutSessionLocale = "de"
	CheckoutSessionLocaleEN   CheckoutSessionLocale = "en"
	CheckoutSessionLocaleES   CheckoutSessionLocale = "es"
	CheckoutSessionLocaleFI   CheckoutSessionLocale = "fi"
	CheckoutSessionLocaleFR   CheckoutSessionLocale = "fr"
	CheckoutSessionLocaleIT   CheckoutSessionLocale = "it"
	CheckoutSessionLocaleJA   CheckoutSessionLocale = "ja"
	CheckoutSessionLocaleNB   CheckoutSessionLocale = "nb"
	CheckoutSessionLocaleNL   CheckoutSessionLocale = "nl"
	CheckoutSessionLocalePL   CheckoutSessionLocale = "pl"
	CheckoutSessionLocalePT   CheckoutSessionLocale = "pt"
	CheckoutSessionLocaleSV   CheckoutSessionLocale = "sv"
	CheckoutSessionLocaleZH   CheckoutSessionLocale = "zh"
)

// BillingAddressCollection controls whether Checkout collects the
// customer's billing address.
type BillingAddressCollection string

const (
	BillingAddressCollectionAuto     BillingAddressCollection = "auto"
	BillingAddressCollectionRequired BillingAddressCollection = "required"
)

// CheckoutSessionStatus is the remote lifecycle status of a session.
type CheckoutSessionStatus string

const (
	CheckoutSessionStatusOpen     CheckoutSessionStatus = "open"
	CheckoutSessionStatusComplete CheckoutSessionStatus = "complete"
	CheckoutSessionStatusExpired  CheckoutSessionStatus = "expired"
)

// CheckoutSession is the session object returned by the API.
type CheckoutSession struct {
	ID                 string                `json:"id"`
	Object             string                `json:"object"`
	URL                string                `json:"url"`
	Status             CheckoutSessionStatus `json:"status"`
	PaymentStatus      string                `json:"payment_status"`
	Mode               CheckoutSessionMode   `json:"mode"`
	AmountTotal        int64                 `json:"amount_total"`
	Currency           string                `json:"currency"`
	Customer           string                `json:"customer"`
	CustomerEmail      string                `json:"customer_email"`
	ClientReferenceID  string                `json:"client_reference_id"`
	PaymentIntent      string                `json:"payment_intent"`
	SuccessURL         string                `json:"success_url"`
	CancelURL          string                `json:"cancel_url"`
	PaymentMethodTypes []string              `json:"payment_method_types"`
	Metadata           map[string]string     `json:"metadata"`
	Created            int64                 `json:"created"`
	ExpiresAt          int64                 `json:"expires_at"`
	Livemode           bool                  `json:"livemode"`
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Int64 returns a pointer to i, for optional request fields.
func Int64(i int64) *int64 { return &i }

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }
