package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalAcceptsBothLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	// date pickers often send the full timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T18:30:00+08:00"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}

func TestDateMarshal(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestContainerLineQuantityAlias(t *testing.T) {
	var line EnquiryContainerLine
	require.NoError(t, json.Unmarshal([]byte(`{"containerTypeId":1,"quantity":4}`), &line))
	assert.Equal(t, 4, line.ContainerQty)

	// canonical field wins over the alias
	require.NoError(t, json.Unmarshal([]byte(`{"containerTypeId":1,"containerQty":2,"quantity":9}`), &line))
	assert.Equal(t, 2, line.ContainerQty)
}

func TestParseEnquiryStatusCaseInsensitive(t *testing.T) {
	status, err := ParseEnquiryStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, status)

	_, err = ParseEnquiryStatus("done")
	assert.Error(t, err)
}

func TestParseOfferTypeCaseInsensitive(t *testing.T) {
	offerType, err := ParseOfferType("ocean")
	require.NoError(t, err)
	assert.Equal(t, OfferTypeOcean, offerType)

	_, err = ParseOfferType("truck")
	assert.Error(t, err)
}
