package response

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=4"`
	Code  string `json:"code" validate:"min=3"`
	Count int    `json:"count" validate:"max=2"`
	Mail  string `json:"mail" validate:"omitempty,email"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{
			name: "required",
			in:   sample{Code: "abc"},
			want: "field name is a required field",
		},
		{
			name: "max string",
			in:   sample{Name: "abcde", Code: "abc"},
			want: "field name must be at most 4 characters long",
		},
		{
			name: "min string and max number",
			in:   sample{Name: "ab", Code: "a", Count: 3},
			want: "field code must be at least 3 characters long, field count must be at most 2",
		},
		{
			name: "other tag",
			in:   sample{Name: "ab", Code: "abc", Mail: "nope"},
			want: "field mail is not a valid",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.want, resp.Error)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestEnvelopes(t *testing.T) {
	ok := StatusOKWithData(map[string]any{"message": "working..."})
	assert.Equal(t, StatusOK, ok.Status)
	assert.Empty(t, ok.Error)

	e := Error("could not create user")
	assert.Equal(t, ErrorResponse{Status: StatusError, Error: "could not create user"}, e)
}

func TestTypeError(t *testing.T) {
	var dst struct {
		UserID int64    `json:"user_id"`
		Price  *float64 `json:"price"`
		Status *string  `json:"status"`
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "строка вместо id", body: `{"user_id":"x"}`, want: "field user_id must be an integer"},
		{name: "строка вместо цены", body: `{"price":"abc"}`, want: "field price must be a number"},
		{name: "число вместо строки", body: `{"status":5}`, want: "field status must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), &dst)

			var typeErr *json.UnmarshalTypeError
			require.ErrorAs(t, err, &typeErr)

			resp := TypeError(typeErr)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}
