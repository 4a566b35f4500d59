package validate

import (
	"testing"

	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	if err := Struct(sample{Name: "Sugar", Quantity: 5}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := Struct(sample{Email: "nope", Quantity: -1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details %T", typed.Details())
	}
	for _, field := range []string{"name", "email", "quantity"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected %s in details, got %v", field, details)
		}
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected message %q", details["name"])
	}
}

func TestVar(t *testing.T) {
	if err := Var("email", "owner@anuinv.com", "email"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	err := Var("email", "owner", "email")
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
