// Package validation proverava i čisti korisnički unos iz upita i
// kontakt formi. Poruke grešaka su na srpskom jer idu direktno klijentu.
package validation

import (
	"errors"
	"strings"
)

var (
	// ErrMissingFields se vraća kada neko obavezno polje nije popunjeno.
	ErrMissingFields = errors.New("Svi potrebni podaci moraju biti popunjeni.")
	// ErrInvalidEmail se vraća za email bez osnovnog oblika adrese.
	ErrInvalidEmail = errors.New("Email adresa nije ispravna.")
	// ErrEmptyBody se vraća za zahtev bez tela.
	ErrEmptyBody = errors.New("Nema podataka u zahtevu.")
)

// RequireFields proverava da su sve vrednosti nepraznе posle skraćivanja
// belina. Redosled i imena polja se ne prijavljuju; klijent dobija jednu
// opštu poruku.
func RequireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// ValidateEmail radi namerno minimalnu proveru: adresa mora sadržati "@"
// i ".". Stroža provera odbija legitimne adrese češće nego što hvata
// greške u kucanju.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	return nil
}

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize uklanja uglaste zagrade iz vrednosti pre ugradnje u HTML telo
// poruke. Prazna vrednost se zamenjuje rezervnom.
func Sanitize(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return angleBrackets.Replace(value)
}

// SanitizeMultiline prvo uklanja uglaste zagrade pa pretvara nove redove
// u <br>, tako da prelomi prežive čišćenje.
func SanitizeMultiline(value, fallback string) string {
	if value == "" {
		return fallback
	}
	value = angleBrackets.Replace(value)
	return strings.ReplaceAll(value, "\n", "<br>")
}
