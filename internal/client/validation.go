package client

import (
	"strconv"
	"strings"
)

type FieldError struct {
	Field       string
	Description string
}

// Parse coerces the text draft into a request payload. Any violation
// blocks the submit before a request is made.
func (f FormDraft) Parse() (ProductPayload, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "nome", Description: "Informe o nome"})
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil || quantity < 0 {
		errs = append(errs, FieldError{Field: "quantidade", Description: "Quantidade inválida"})
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		errs = append(errs, FieldError{Field: "preco", Description: "Preço inválido"})
	}

	if len(errs) > 0 {
		return ProductPayload{}, errs
	}
	return ProductPayload{Name: name, Quantity: quantity, Price: price}, nil
}
