package models

import (
	"time"

	"github.com/google/uuid"
)

// Product predstavlja red iz tabele proizvodi. Kolone zadržavaju nazive
// iz postojeće baze kataloga.
type Product struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Sifra           string     `db:"sifra" json:"sifra"`
	Naziv           string     `db:"naziv" json:"naziv"`
	CenaPoM2        float64    `db:"cena_po_m2" json:"cena_po_m2"`
	Valuta          string     `db:"valuta" json:"valuta"`
	Opis            *string    `db:"opis" json:"opis,omitempty"`
	KategorijaID    uuid.UUID  `db:"kategorija_id" json:"kategorija_id"`
	TezinaPoM2      *float64   `db:"tezina_po_m2" json:"tezina_po_m2,omitempty"`
	DebljinaMin     *float64   `db:"debljina_min" json:"debljina_min,omitempty"`
	DebljinaMax     *float64   `db:"debljina_max" json:"debljina_max,omitempty"`
	DatumKreiranja  time.Time  `db:"datum_kreiranja" json:"datum_kreiranja"`
	DatumAzuriranja *time.Time `db:"datum_azuriranja" json:"datum_azuriranja,omitempty"`
}

// Category predstavlja kategoriju proizvoda.
type Category struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Naziv          string    `db:"naziv" json:"naziv"`
	Opis           *string   `db:"opis" json:"opis,omitempty"`
	DatumKreiranja time.Time `db:"datum_kreiranja" json:"datum_kreiranja"`
}

// ProductImage predstavlja sliku proizvoda iz tabele slike_proizvoda.
type ProductImage struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ProizvodID      uuid.UUID `db:"proizvod_id" json:"proizvod_id"`
	URLSlike        string    `db:"url_slike" json:"url_slike"`
	TipSlike        *string   `db:"tip_slike" json:"tip_slike,omitempty"`
	AltTekst        *string   `db:"alt_tekst" json:"alt_tekst,omitempty"`
	GlavnaSlika     bool      `db:"glavna_slika" json:"glavna_slika"`
	RedosledPrikaza int       `db:"redosled_prikaza" json:"redosled_prikaza"`
	DatumKreiranja  time.Time `db:"datum_kreiranja" json:"datum_kreiranja"`
}

// ProductCharacteristic predstavlja karakteristiku proizvoda.
type ProductCharacteristic struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	ProizvodID            uuid.UUID `db:"proizvod_id" json:"proizvod_id"`
	NazivKarakteristike   string    `db:"naziv_karakteristike" json:"naziv_karakteristike"`
	VrednostKarakteristike string   `db:"vrednost_karakteristike" json:"vrednost_karakteristike"`
	RedosledPrikaza       int       `db:"redosled_prikaza" json:"redosled_prikaza"`
}

// ProductInventory predstavlja stanje zaliha proizvoda.
type ProductInventory struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	ProizvodID          uuid.UUID `db:"proizvod_id" json:"proizvod_id"`
	KolicinaM2          float64   `db:"kolicina_m2" json:"kolicina_m2"`
	MinZaliha           float64   `db:"min_zaliha" json:"min_zaliha"`
	PoslednjeAzuriranje time.Time `db:"poslednje_azuriranje" json:"poslednje_azuriranje"`
	Napomena            *string   `db:"napomena" json:"napomena,omitempty"`
	Status              string    `db:"status" json:"status"`
}

// ProductDetail objedinjuje proizvod sa svim pratećim podacima.
type ProductDetail struct {
	Product         Product                 `json:"product"`
	Category        Category                `json:"category"`
	Images          []ProductImage          `json:"images"`
	Characteristics []ProductCharacteristic `json:"characteristics"`
	Inventory       ProductInventory        `json:"inventory"`
}
