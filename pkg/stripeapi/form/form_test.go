package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productData struct {
	Name        string  `form:"name"`
	Description *string `form:"description"`
}

type priceData struct {
	UnitAmount  int64       `form:"unit_amount"`
	Currency    string      `form:"currency"`
	ProductData productData `form:"product_data"`
}

type lineItem struct {
	Quantity  int64     `form:"quantity"`
	PriceData priceData `form:"price_data"`
	Images    []string  `form:"images"`
}

type sessionParams struct {
	CancelURL          string            `form:"cancel_url"`
	SuccessURL         string            `form:"success_url"`
	PaymentMethodTypes []string          `form:"payment_method_types"`
	CustomerEmail      *string           `form:"customer_email"`
	LineItems          []lineItem        `form:"line_items"`
	Metadata           map[string]string `form:"metadata"`
	Live               *bool             `form:"live"`
	ignored            string            //nolint:unused
	NoTag              string
	Skipped            string `form:"-"`
}

func strPtr(s string) *string { return &s }

func TestValues_MandatoryOnly(t *testing.T) {
	params := sessionParams{
		CancelURL:          "https://a/x",
		SuccessURL:         "https://a/y",
		PaymentMethodTypes: []string{"card"},
	}

	values, err := Values(params)
	require.NoError(t, err)

	want := url.Values{
		"cancel_url":              {"https://a/x"},
		"success_url":             {"https://a/y"},
		"payment_method_types[0]": {"card"},
	}
	assert.Equal(t, want, values, "unset optional fields must be absent, not empty")
}

func TestValues_OptionalFieldAddsExactlyOneKey(t *testing.T) {
	base := sessionParams{
		CancelURL:          "https://a/x",
		SuccessURL:         "https://a/y",
		PaymentMethodTypes: []string{"card"},
	}
	withEmail := base
	withEmail.CustomerEmail = strPtr("a@b.com")

	baseValues, err := Values(base)
	require.NoError(t, err)
	emailValues, err := Values(withEmail)
	require.NoError(t, err)

	require.Len(t, emailValues, len(baseValues)+1)
	assert.Equal(t, "a@b.com", emailValues.Get("customer_email"))
	for key := range baseValues {
		assert.Equal(t, baseValues[key], emailValues[key], "key %s changed", key)
	}
}

func TestValues_NestedAndIndexedKeys(t *testing.T) {
	params := sessionParams{
		CancelURL:          "https://shop.test/cancel",
		SuccessURL:         "https://shop.test/success",
		PaymentMethodTypes: []string{"card", "ideal"},
		LineItems: []lineItem{
			{
				Quantity: 2,
				PriceData: priceData{
					UnitAmount: 1500,
					Currency:   "usd",
					ProductData: productData{
						Name:        "T-shirt",
						Description: strPtr("organic cotton"),
					},
				},
				Images: []string{"https://img.test/1.png"},
			},
			{
				Quantity: 1,
				PriceData: priceData{
					UnitAmount:  999,
					Currency:    "eur",
					ProductData: productData{Name: "Sticker"},
				},
			},
		},
	}

	values, err := Values(&params)
	require.NoError(t, err)

	assert.Equal(t, "card", values.Get("payment_method_types[0]"))
	assert.Equal(t, "ideal", values.Get("payment_method_types[1]"))
	assert.Equal(t, "2", values.Get("line_items[0][quantity]"))
	assert.Equal(t, "1500", values.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", values.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "T-shirt", values.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "organic cotton", values.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "https://img.test/1.png", values.Get("line_items[0][images][0]"))
	assert.Equal(t, "1", values.Get("line_items[1][quantity]"))
	assert.Equal(t, "Sticker", values.Get("line_items[1][price_data][product_data][name]"))

	// The second line item has no description set, so the key must not exist.
	_, present := values["line_items[1][price_data][product_data][description]"]
	assert.False(t, present)
}

func TestValues_MapAndBool(t *testing.T) {
	live := true
	params := sessionParams{
		CancelURL:          "https://a/x",
		SuccessURL:         "https://a/y",
		PaymentMethodTypes: []string{"card"},
		Metadata:           map[string]string{"order_id": "ord_42"},
		Live:               &live,
	}

	values, err := Values(params)
	require.NoError(t, err)
	assert.Equal(t, "ord_42", values.Get("metadata[order_id]"))
	assert.Equal(t, "true", values.Get("live"))
}

func TestValues_UntaggedAndSkippedFields(t *testing.T) {
	params := sessionParams{
		CancelURL:          "https://a/x",
		SuccessURL:         "https://a/y",
		PaymentMethodTypes: []string{"card"},
		NoTag:              "should not appear",
		Skipped:            "should not appear",
	}

	values, err := Values(params)
	require.NoError(t, err)
	require.Len(t, values, 3)
}

func TestValues_NilPointerInput(t *testing.T) {
	var params *sessionParams
	values, err := Values(params)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestValues_NonStructInput(t *testing.T) {
	_, err := Values("not a struct")
	require.Error(t, err)
}
