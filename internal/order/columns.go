package order

import "regexp"

// Izydesk column names, after lowercasing.
const (
	ColOrderID  = "id_commande"
	ColDate     = "date"
	ColTime     = "heure"
	ColService  = "service"
	ColProducts = "produits"
	ColHT       = "ht"
	ColTTC      = "ttc"
	ColPayments = "paiements"
)

// OrderIDHeader matches the date-ranged header Izydesk gives the order id
// column ("commandes du 01/01/2024 au 31/01/2024").
var OrderIDHeader = regexp.MustCompile(`^commandes du \d{2}/\d{2}/\d{4} au \d{2}/\d{2}/\d{4}`)

var RequiredColumns = []string{
	ColOrderID, ColDate, ColTime, ColService, ColProducts, ColHT, ColTTC, ColPayments,
}
