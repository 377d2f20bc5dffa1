// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features scores a company's intelligence record against a static
// table of Workshop platform capabilities. It is an optional enrichment: a
// missing table only omits the solution-match section, never invalidates a
// record.
package features

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Capability maps a set of pain-point keywords to one platform capability.
type Capability struct {
	// Key is the stable identifier (e.g. "frontline_mobile").
	Key string `yaml:"key"`

	// Name is the display name (e.g. "Mobile-First Frontline Reach").
	Name string `yaml:"name"`

	// Features lists the concrete product features under this capability.
	Features []string `yaml:"features"`

	// PainPoints are the lowercase keywords matched against record text.
	PainPoints []string `yaml:"pain_points"`

	// Tier is the pricing tier the capability belongs to.
	Tier string `yaml:"tier"`
}

// Table is an ordered capability table. Order breaks score ties, so it is
// part of the matching contract.
type Table struct {
	Capabilities []Capability `yaml:"capabilities"`
}

// LoadTable reads a capability table from a YAML file, for deployments that
// maintain their own feature sheet.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capability table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing capability table %s: %w", path, err)
	}
	if len(t.Capabilities) == 0 {
		return nil, fmt.Errorf("capability table %s has no capabilities", path)
	}
	return &t, nil
}

// DefaultTable returns the built-in Workshop capability table.
func DefaultTable() *Table {
	return &Table{Capabilities: []Capability{
		{
			Key:  "leadership_communication",
			Name: "Leadership Communication Hub",
			Features: []string{
				"Drag-and-drop functionality",
				"Template library",
				"Ghostwriting",
				"Scheduling",
				"Custom built email templates",
			},
			PainPoints: []string{"leadership transition", "new ceo", "executive communication", "vision alignment", "change management"},
			Tier:       "Essential",
		},
		{
			Key:  "frontline_mobile",
			Name: "Mobile-First Frontline Reach",
			Features: []string{
				"Mobile/responsive design",
				"SMS",
				"Pages",
				"QR codes",
				"Additional phone numbers for SMS",
			},
			PainPoints: []string{"frontline", "deskless", "shift workers", "clinical staff", "field employees", "mobile workforce"},
			Tier:       "Essential + SMS Add-on",
		},
		{
			Key:  "audience_segmentation",
			Name: "Intelligent Audience Targeting",
			Features: []string{
				"Audience segmentation",
				"Dynamic distribution lists",
				"Filter by department, role, location, etc.",
				"Filter by custom properties",
				"Automated time zone sending",
			},
			PainPoints: []string{"multiple locations", "distributed workforce", "multi-site", "geographic spread", "targeted messaging"},
			Tier:       "Enhanced",
		},
		{
			Key:  "hybrid_workforce",
			Name: "Hybrid Workforce Suite",
			Features: []string{
				"Microsoft Teams",
				"Slack",
				"Sharepoint",
				"Workvivo",
				"Shareable URL",
				"Campaign archives",
			},
			PainPoints: []string{"hybrid work", "remote", "work from home", "distributed teams", "flexible work"},
			Tier:       "Essential",
		},
		{
			Key:  "integration_ecosystem",
			Name: "HR System Integration",
			Features: []string{
				"Workday",
				"UKG Pro",
				"ADP Workforce Now",
				"SAP SuccessFactors",
				"Oracle",
				"Ceridian Dayforce",
				"Azure Active Directory",
				"Okta",
				"Single Sign On (SSO)",
			},
			PainPoints: []string{"workday", "adp", "hris integration", "employee data", "sso", "active directory"},
			Tier:       "Premium (HRIS) / Essential (Directory)",
		},
		{
			Key:  "analytics_roi",
			Name: "Engagement Analytics & ROI",
			Features: []string{
				"Open, click, read time, and device analytics",
				"Click maps",
				"Account-wide analytics",
				"Campaign tagging & analytics",
				"Monthly email performance summaries",
				"Individual recipient engagement data",
				"Downloadable PDF reports",
			},
			PainPoints: []string{"engagement metrics", "roi", "analytics", "measurement", "reporting", "data-driven"},
			Tier:       "Essential",
		},
		{
			Key:  "multilingual",
			Name: "Global Team Communication",
			Features: []string{
				"Language translation",
				"US/EU/CA-based servers",
				"Automated time zone sending",
			},
			PainPoints: []string{"international", "global", "multilingual", "multiple languages", "language barriers"},
			Tier:       "Premium",
		},
		{
			Key:  "change_management",
			Name: "Change Management Toolkit",
			Features: []string{
				"Communications calendar",
				"Campaign management",
				"Template management",
				"Blackout dates",
			},
			PainPoints: []string{"acquisition", "merger", "reorganization", "transformation", "change initiative"},
			Tier:       "Essential (Blackout dates is Premium)",
		},
		{
			Key:  "employee_engagement",
			Name: "Employee Engagement Tools",
			Features: []string{
				"Embedded surveys",
				"AI-assisted features",
				"AI content tools",
				"GIPHY integration",
				"Unsplash photo integration",
			},
			PainPoints: []string{"engagement", "retention", "turnover", "culture", "employee experience"},
			Tier:       "Enhanced",
		},
		{
			Key:  "rapid_deployment",
			Name: "Fast Implementation",
			Features: []string{
				"Onboarding management",
				"Software training for new users",
				"Dedicated account management",
				"Email support",
			},
			PainPoints: []string{"quick setup", "fast deployment", "time to value", "ease of use"},
			Tier:       "Essential",
		},
		{
			Key:  "security_compliance",
			Name: "Enterprise Security",
			Features: []string{
				"SOC 2 Type II",
				"GDPR compliant",
				"Penetration testing",
				"Access control",
				"Automatic encrypted backups",
				"Disaster recovery",
			},
			PainPoints: []string{"security", "compliance", "data protection", "healthcare", "financial services", "regulated"},
			Tier:       "Essential",
		},
		{
			Key:  "scale_enterprise",
			Name: "Enterprise Scale",
			Features: []string{
				"Unlimited storage",
				"Unlimited admins",
				"User roles management",
				"Permission management",
				"Unlimited user licenses",
			},
			PainPoints: []string{"large organization", "5000+", "10000+", "enterprise", "scale"},
			Tier:       "Enhanced/Premium",
		},
	}}
}
