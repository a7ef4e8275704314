package mailer

import "fmt"

// InquiryEmailData su već očišćeni podaci upita za proizvod. Pozivaoc je
// dužan da vrednosti provuče kroz validation.Sanitize pre popunjavanja.
type InquiryEmailData struct {
	ProductName string
	ProductCode string
	Quantity    string
	Name        string
	Email       string
	Phone       string
	Message     string
}

// ContactEmailData su očišćeni podaci opšte kontakt poruke.
type ContactEmailData struct {
	Subject string
	Name    string
	Email   string
	Phone   string
	Message string
}

// BuildInquiryHTML sastavlja HTML telo email poruke za upit o proizvodu.
func BuildInquiryHTML(d InquiryEmailData) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333; border-bottom: 1px solid #eee; padding-bottom: 10px;">Novi upit za proizvod</h2>

  <div style="margin: 20px 0;">
    <p><strong>Proizvod:</strong> %s (%s)</p>
    <p><strong>Količina:</strong> %s m²</p>
  </div>

  <div style="margin: 20px 0;">
    <p><strong>Ime i prezime:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Telefon:</strong> %s</p>
  </div>

  <div style="margin: 20px 0; background-color: #f9f9f9; padding: 15px; border-radius: 5px;">
    <p><strong>Poruka:</strong></p>
    <p>%s</p>
  </div>

  <div style="font-size: 12px; margin-top: 30px; color: #777; border-top: 1px solid #eee; padding-top: 10px;">
    <p>Ova poruka je automatski poslata sa web sajta KamenPro.</p>
  </div>
</div>`,
		d.ProductName, d.ProductCode, d.Quantity, d.Name, d.Email, d.Phone, d.Message)
}

// BuildInquiryText sastavlja čisto tekstualnu varijantu upita.
func BuildInquiryText(d InquiryEmailData) string {
	return fmt.Sprintf("Novi upit za proizvod %s (%s) od %s. Email: %s, Telefon: %s. Poruka: %s",
		d.ProductName, d.ProductCode, d.Name, d.Email, d.Phone, d.Message)
}

// BuildContactHTML sastavlja HTML telo opšte kontakt poruke.
func BuildContactHTML(d ContactEmailData) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333; border-bottom: 1px solid #eee; padding-bottom: 10px;">Nova kontakt poruka</h2>

  <div style="margin: 20px 0;">
    <p><strong>Tema:</strong> %s</p>
  </div>

  <div style="margin: 20px 0;">
    <p><strong>Ime i prezime:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Telefon:</strong> %s</p>
  </div>

  <div style="margin: 20px 0; background-color: #f9f9f9; padding: 15px; border-radius: 5px;">
    <p><strong>Poruka:</strong></p>
    <p>%s</p>
  </div>

  <div style="font-size: 12px; margin-top: 30px; color: #777; border-top: 1px solid #eee; padding-top: 10px;">
    <p>Ova poruka je automatski poslata sa web sajta KamenPro.</p>
  </div>
</div>`,
		d.Subject, d.Name, d.Email, d.Phone, d.Message)
}

// BuildContactText sastavlja tekstualnu varijantu kontakt poruke.
func BuildContactText(d ContactEmailData) string {
	return fmt.Sprintf("Nova kontakt poruka: %s od %s. Email: %s, Telefon: %s. Poruka: %s",
		d.Subject, d.Name, d.Email, d.Phone, d.Message)
}
