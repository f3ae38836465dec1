package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRequest_WireKeys(t *testing.T) {
	in := FormInputs{Name: "Alice", Phone: "+15551234567", Password: "hunter2"}

	b, err := json.Marshal(in.Request())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","phone":"+15551234567","password":"hunter2"}`, string(b))
	assert.Equal(t, in, in.Request().Inputs())
}

func TestCheckResponse_OptionalFields(t *testing.T) {
	var resp CheckResponse
	require.NoError(t, json.Unmarshal([]byte(`{"breach_count": 5}`), &resp))
	assert.Equal(t, 5, resp.BreachCount)
	assert.Empty(t, resp.Message)

	require.NoError(t, json.Unmarshal([]byte(`{"message":"Missing required fields: name, phone, or password"}`), &resp))
	assert.Equal(t, "Missing required fields: name, phone, or password", resp.Message)
}
