package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type entry struct {
		ID          string `json:"id"`
		ProductName string `json:"product_name"`
		IsSwap      bool   `json:"is_swap"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "created entry",
			data:     entry{ID: "1", ProductName: "Oat milk", IsSwap: true},
			status:   http.StatusCreated,
			wantBody: `{"id":"1","product_name":"Oat milk","is_swap":true}`,
		},
		{
			name:     "empty list",
			data:     []entry{},
			status:   http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableData(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestDecodeJSON(t *testing.T) {
	type input struct {
		ProductName string `json:"product_name"`
	}

	tests := []struct {
		name     string
		body     string
		maxBytes int64
		want     string
		wantErr  error
		anyErr   bool
	}{
		{name: "valid", body: `{"product_name":"Oat milk"}`, maxBytes: 1024, want: "Oat milk"},
		{name: "surrounding whitespace", body: " \n{\"product_name\":\"Rice\"}\n ", maxBytes: 1024, want: "Rice"},
		{name: "empty body", body: "", maxBytes: 1024, wantErr: ErrEmptyBody},
		{name: "two documents", body: `{"product_name":"a"}{"product_name":"b"}`, maxBytes: 1024, wantErr: ErrTrailingData},
		{name: "unknown field", body: `{"colour":"red"}`, maxBytes: 1024, anyErr: true},
		{name: "wrong type", body: `{"product_name":42}`, maxBytes: 1024, anyErr: true},
		{name: "body over limit", body: `{"product_name":"a very long name"}`, maxBytes: 8, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got input
			err := DecodeJSON(strings.NewReader(tt.body), &got, tt.maxBytes)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.ProductName)
			}
		})
	}
}
