package service

import "strings"

// Wilayas recognized on the checkout form, in official numbering order.
var Wilayas = []string{
	"Adrar", "Chlef", "Laghouat", "Oum El Bouaghi", "Batna", "Béjaïa",
	"Biskra", "Béchar", "Blida", "Bouira", "Tamanrasset", "Tébessa",
	"Tlemcen", "Tiaret", "Tizi Ouzou", "Algiers", "Djelfa", "Jijel",
	"Sétif", "Saïda", "Skikda", "Sidi Bel Abbès", "Annaba", "Guelma",
	"Constantine", "Médéa", "Mostaganem", "M'Sila", "Mascara", "Ouargla",
	"Oran", "El Bayadh", "Illizi", "Bordj Bou Arréridj", "Boumerdès",
	"El Tarf", "Tindouf", "Tissemsilt", "El Oued", "Khenchela",
	"Souk Ahras", "Tipaza", "Mila", "Aïn Defla", "Naâma", "Aïn Témouchent",
	"Ghardaïa", "Relizane", "Timimoun", "Bordj Badji Mokhtar",
	"Ouled Djellal", "Béni Abbès", "In Salah", "In Guezzam", "Touggourt",
	"Djanet", "El M'Ghair", "El Meniaa",
}

const (
	PaymentCashOnDelivery = "cod"
	PaymentCCP            = "ccp"
	PaymentEdahabia       = "edahabia"
)

var PaymentMethods = []string{PaymentCashOnDelivery, PaymentCCP, PaymentEdahabia}

// CanonicalWilaya matches case-insensitively and returns the official
// spelling, or "" when the wilaya is not recognized.
func CanonicalWilaya(name string) string {
	name = strings.TrimSpace(name)
	for _, w := range Wilayas {
		if strings.EqualFold(w, name) {
			return w
		}
	}
	return ""
}

func RecognizedPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
