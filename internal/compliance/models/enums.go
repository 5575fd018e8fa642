package models

// Intake enumerations offered to clients. Matching never consults these:
// conditions compare literal strings, so an unknown value simply fails to
// match restricted criteria and passes unrestricted ones.

// USStates lists the states selectable at intake.
var USStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

// Industries lists the industry categories selectable at intake.
var Industries = []string{
	"Agriculture", "Automotive", "Banking & Finance", "Construction", "Consulting",
	"Education", "Energy & Utilities", "Entertainment", "Food & Beverage", "Government",
	"Healthcare", "Hospitality", "Information Technology", "Insurance", "Legal",
	"Manufacturing", "Marketing & Advertising", "Non-profit", "Real Estate", "Retail",
	"Technology", "Telecommunications", "Transportation", "Other",
}

// BusinessTypes lists the legal structures selectable at intake.
var BusinessTypes = []string{
	"Sole Proprietorship", "Partnership", "LLC", "Corporation", "S-Corporation",
	"Non-profit", "Other",
}
