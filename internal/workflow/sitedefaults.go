package workflow

// BusinessInfo is the contact-page content block.
type BusinessInfo struct {
	Address       string   `json:"address"`
	PostalAddress string   `json:"postalAddress,omitempty"`
	Phone         string   `json:"phone"`
	PhoneDisplay  string   `json:"phoneDisplay"`
	Fax           string   `json:"fax,omitempty"`
	Email         string   `json:"email,omitempty"`
	Hours         []string `json:"hours"`
}

// Service is one entry of the service catalog.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	IconType    string `json:"iconType,omitempty"`
}

// DefaultBusinessInfo and DefaultServices are the built-in content used when
// the server has no override documents.
var DefaultBusinessInfo = BusinessInfo{
	Address:       "Lot 102 Main Road, Willunga, SA 5172",
	PostalAddress: "P.O. Box 109, Willunga, SA 5172",
	Phone:         "0885564155",
	PhoneDisplay:  "(08) 8556 4155",
	Fax:           "(08) 8556 2299",
	Hours: []string{
		"Mon - Fri: 8:30 AM - 5:00 PM",
		"Saturday: 9:00 AM - 2:00 PM",
		"Sunday: Closed",
	},
}

var DefaultServices = []Service{
	{ID: 1, Title: "Expert Styling", Description: "Standard and show-quality cuts tailored to breed standards.", Price: "From $85", IconType: "scissors"},
	{ID: 2, Title: "Therapeutic Treatments", Description: "Specialized care for pets with skin conditions or flea infestations.", Price: "From $55", IconType: "water"},
	{ID: 3, Title: "Feline Grooming", Description: "Dedicated grooming for cats in a calm, stress-free environment.", Price: "From $70", IconType: "paw"},
	{ID: 4, Title: "Finishing Touches", Description: "Nail trimming, ear cleaning and styling extras for a polished look.", Price: "From $15", IconType: "ribbon"},
}
