package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Category string `validate:"category"`
	LastFour string `validate:"last_four"`
	Amount   string `validate:"decimal_amount"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	valid := sample{Category: "food", LastFour: "4242", Amount: "-4.99"}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	tests := []struct {
		name  string
		input sample
		field string
	}{
		{name: "unknown_category", input: sample{Category: "groceries", LastFour: "4242", Amount: "1"}, field: "Category"},
		{name: "short_last_four", input: sample{Category: "food", LastFour: "42", Amount: "1"}, field: "LastFour"},
		{name: "letters_last_four", input: sample{Category: "food", LastFour: "42ab", Amount: "1"}, field: "LastFour"},
		{name: "bad_amount", input: sample{Category: "food", LastFour: "4242", Amount: "abc"}, field: "Amount"},
		{name: "empty_amount", input: sample{Category: "food", LastFour: "4242", Amount: ""}, field: "Amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			errs, ok := err.(validator.ValidationErrors)
			if !ok || len(errs) != 1 {
				t.Fatalf("expected one validation error, got %v", err)
			}
			if errs[0].Field() != tt.field {
				t.Errorf("expected error on %s, got %s", tt.field, errs[0].Field())
			}
		})
	}
}
