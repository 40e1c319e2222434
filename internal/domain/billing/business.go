package billing

// BusinessInfo holds the seller identity printed on invoices.
type BusinessInfo struct {
	Name              string
	Owner             string
	Tagline           string
	Location          string
	Phone1            string
	Phone2            string
	Email             string
	GSTIN             string
	PAN               string
	State             string
	StateCode         string
	BankName          string
	AccountHolderName string
	AccountNumber     string
	IFSCCode          string
}

// Seller is the business profile for Sai Siddha Furniture Works. GSTIN, PAN
// and bank fields are filled from configuration when available.
var Seller = BusinessInfo{
	Name:              "Sai Siddha Furniture Work",
	Owner:             "Mr. Pritam Nandgaonkar",
	Tagline:           "Manufacturers of all types of Industrial Wooden Pallets Including Jungle Wood and Custom Options as per Requirements",
	Location:          "MIDC, Ratnagiri, Maharashtra, India",
	Phone1:            "9075700075",
	Phone2:            "9075000515",
	Email:             "saisiddhafurnitureworks@gmail.com",
	State:             "Maharashtra",
	StateCode:         "27",
	AccountHolderName: "Sai Siddha Furniture Work",
}
