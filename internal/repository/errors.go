package repository

import "errors"

// Zajedničke greške repozitorijuma.
var (
	ErrProductNotFound  = errors.New("proizvod nije pronađen")
	ErrCategoryNotFound = errors.New("kategorija nije pronađena")
)
