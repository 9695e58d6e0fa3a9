package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), d.Time)

	d, err = ParseDate("2024-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("01/05/2024")
	assert.Error(t, err)
}

func TestCreateShoeRequestDecoding(t *testing.T) {
	body := `{"slug":"tail-twisters","name":"Tail Twisters","price":16500,"sale_price":12500,"release_date":"2024-05-01","num_of_colors":3}`

	var req CreateShoeRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.SalePrice)
	assert.Equal(t, 12500, *req.SalePrice)
	require.NotNil(t, req.ReleaseDate)
	assert.Equal(t, time.May, req.ReleaseDate.Month())

	var bad CreateShoeRequest
	assert.Error(t, json.Unmarshal([]byte(`{"release_date":"yesterday"}`), &bad))
}
