package models

import (
	"errors"
	"testing"

	"github.com/ghuser/pantry/services/product/domain"
)

func TestNewProductID(t *testing.T) {
	t.Run("valid barcode", func(t *testing.T) {
		id, err := NewProductID("6410405082657")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.String() != "6410405082657" {
			t.Fatalf("expected %q, got %q", "6410405082657", id.String())
		}
	})

	t.Run("single character", func(t *testing.T) {
		if _, err := NewProductID("x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty string returns ErrInvalidProductID", func(t *testing.T) {
		_, err := NewProductID("")
		if !errors.Is(err, domain.ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})
}

func TestNewBrand(t *testing.T) {
	t.Run("valid brand", func(t *testing.T) {
		b, err := NewBrand("Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.String() != "Acme" {
			t.Fatalf("expected %q, got %q", "Acme", b.String())
		}
	})

	t.Run("empty string returns ErrInvalidBrand", func(t *testing.T) {
		_, err := NewBrand("")
		if !errors.Is(err, domain.ErrInvalidBrand) {
			t.Fatalf("expected ErrInvalidBrand, got %v", err)
		}
	})
}
