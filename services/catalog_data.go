package services

import (
	"strings"

	"github.com/ttra33507-star/c4web/models"
)

// defaultServices is the catalog seeded into an empty services table.
type seedService struct {
	Name            string
	Price           float64
	Image           string
	Description     string
	LongDescription string
}

var defaultServices = []seedService{
	{
		Name:            "Auto Delete Comment - 1 Month Plan",
		Price:           9.99,
		Image:           "C4-Auto-Delete-Comment.png",
		Description:     "Kick-off automation with full feature access for 30 days.",
		LongDescription: "Entry plan for teams validating their workflow. Includes all standard modules and support.",
	},
	{
		Name:            "Facebook Station ",
		Price:           29.99,
		Image:           "C4-FB-Station.png",
		Description:     "Quarterly bundle with bonus days and premium feature unlocks.",
		LongDescription: "Our most popular option—extend coverage, unlock additional rotations, and receive priority support.",
	},
	{
		Name:            "Report Facebook ",
		Price:           119.99,
		Image:           "C4-Report-Facebook.png",
		Description:     "Annual coverage with native verification and custom feature access.",
		LongDescription: "Full-year automation license with concierge onboarding, compliance review, and tailored feature drops.",
	},
	{
		Name:        "Telegram Station",
		Price:       89.99,
		Image:       "C4-TG-Station.png",
		Description: "Immersive audio with hybrid ANC for open offices.",
	},
	{
		Name:        "Smart Desk Organizer",
		Price:       59.99,
		Image:       "txt.jpg",
		Description: "Wireless charging, pen storage, and cable routing combined.",
	},
}

// canonicalImageLookup maps sanitized lowercase asset names to the file
// names actually deployed under web/static.
var canonicalImageLookup = map[string]string{
	"c4_auto_delete_comment.png": "C4_Auto_Delete_Comment.png",
	"c4_fb_station.png":          "C4_FB_Station.png",
	"c4_report_facebook.png":     "C4_Report_Facebook.png",
	"c4_tg_station.png":          "C4_TG_Station.png",
	"logo_c4_hub.png":            "logo_C4_HUB.png",
	"logo_c4_tech_hub.png":       "logo_C4_TECH_HUB.png",
	"txt.jpg":                    "txt.jpg",
}

// normalizeStaticImageName aligns stored asset names with the deployed
// file set.
func normalizeStaticImageName(name string) string {
	if name == "" {
		return ""
	}
	sanitized := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if canonical, ok := canonicalImageLookup[strings.ToLower(sanitized)]; ok {
		return canonical
	}
	return sanitized
}

// pricingPlanDefinition is a static marketing tier. Plans reference catalog
// services by name; a plan whose service is absent falls back to its own
// price and renders without an order link.
type pricingPlanDefinition struct {
	ServiceName string
	Title       string
	Price       float64
	PriceSuffix string
	Badge       string
	Features    []string
	Variant     string
}

var pricingPlanDefinitions = []pricingPlanDefinition{
	{
		ServiceName: "1 Month Automation Plan",
		Title:       "1 Month",
		Price:       9.99,
		PriceSuffix: "/month",
		Features: []string{
			"2 time change key",
			"Bulk upload features",
			"Function schedule access",
			"Unlimited real device support",
			"Unlimited LDPlayer support",
		},
		Variant: "standard",
	},
	{
		ServiceName: "3 Month Automation Plan",
		Title:       "3 Months",
		Price:       29.99,
		PriceSuffix: "/3 months",
		Badge:       "Most popular",
		Features: []string{
			"+15 days free bonus",
			"10 time change key",
			"Bulk upload features",
			"Unlimited device & LDPlayer support",
			"Unlimited Facebook accounts",
		},
		Variant: "highlight",
	},
	{
		ServiceName: "12 Month Automation Plan",
		Title:       "12 Months",
		Price:       119.99,
		PriceSuffix: "/year",
		Features: []string{
			"+30 days free bonus",
			"100 time change key",
			"Everything in 3 months plan",
			"Verify account natively",
			"Custom features on request",
		},
		Variant: "standard",
	},
}

// defaultLicenses is the static license inventory. Empty until the license
// provisioning backend lands; the dashboard renders an empty state.
var defaultLicenses = []models.License{}
