// Package store holds the reference regulation set used by the
// administrative seed operation.
package store

import "compliscan/internal/compliance/models"

// ReferenceRegulations returns the fixed reference set inserted by the seed
// operation. Seeding is an administrative, one-time action: invoking it twice
// duplicates records, which is an accepted limitation of this utility.
func ReferenceRegulations() []models.RegulationInput {
	return []models.RegulationInput{
		{
			Title:          "Fair Labor Standards Act (FLSA)",
			Description:    "Federal law establishing minimum wage, overtime pay, recordkeeping, and child labor standards for employees in both private sector and government.",
			RegulatoryBody: "U.S. Department of Labor",
			States:         models.Unrestricted(),
			Industries:     models.Unrestricted(),
			BusinessTypes:  models.Unrestricted(),
			EmployeeCountMin: models.IntPtr(1),
			ComplianceRequirements: []string{
				"Pay minimum wage ($7.25/hour federal, higher in some states)",
				"Pay overtime (1.5x regular rate) for hours over 40 per week",
				"Maintain accurate records of hours worked and wages paid",
				"Comply with child labor restrictions",
			},
			Penalties: "Back wages, liquidated damages, civil monetary penalties up to $2,074 per violation, and potential criminal prosecution for willful violations.",
		},
		{
			Title:          "Occupational Safety and Health Act (OSHA)",
			Description:    "Federal law requiring employers to provide a workplace free from serious recognized hazards and comply with occupational safety and health standards.",
			RegulatoryBody: "Occupational Safety and Health Administration",
			States:         models.Unrestricted(),
			Industries:     models.Unrestricted(),
			BusinessTypes:  models.Unrestricted(),
			EmployeeCountMin: models.IntPtr(1),
			ComplianceRequirements: []string{
				"Provide a workplace free from serious hazards",
				"Follow all relevant OSHA safety standards",
				"Provide safety training to employees",
				"Keep records of work-related injuries and illnesses",
				"Post OSHA notices and summaries",
			},
			Penalties: "Fines ranging from $15,625 per violation for serious violations to $156,259 per violation for willful or repeated violations.",
		},
		{
			Title:          "Americans with Disabilities Act (ADA)",
			Description:    "Civil rights law prohibiting discrimination based on disability in employment, public accommodations, transportation, and telecommunications.",
			RegulatoryBody: "Equal Employment Opportunity Commission",
			States:         models.Unrestricted(),
			Industries:     models.Unrestricted(),
			BusinessTypes:  models.Unrestricted(),
			EmployeeCountMin: models.IntPtr(15),
			ComplianceRequirements: []string{
				"Provide reasonable accommodations for employees with disabilities",
				"Ensure workplace accessibility",
				"Prohibit discrimination in hiring, promotion, and other employment practices",
				"Provide accessible public accommodations (if applicable)",
			},
			Penalties: "Compensatory and punitive damages, attorney fees, and civil penalties up to $75,000 for first violations and $150,000 for subsequent violations.",
		},
		{
			Title:          "California Consumer Privacy Act (CCPA)",
			Description:    "State law granting California residents rights over their personal information collected by businesses.",
			RegulatoryBody: "California Attorney General",
			States:         models.RestrictedTo("California"),
			Industries:     models.Unrestricted(),
			BusinessTypes:  models.Unrestricted(),
			RevenueMin:     models.Int64Ptr(25_000_000),
			ComplianceRequirements: []string{
				"Provide privacy notice to consumers",
				"Allow consumers to request deletion of personal information",
				"Allow consumers to opt-out of sale of personal information",
				"Implement data security measures",
				"Respond to consumer requests within 45 days",
			},
			Penalties: "Civil penalties of up to $2,500 per violation, or $7,500 per intentional violation, plus potential statutory damages in private lawsuits.",
		},
		{
			Title:          "Food Safety Modernization Act (FSMA)",
			Description:    "Federal law focusing on preventing foodborne illness through modern food safety practices and enhanced FDA authority.",
			RegulatoryBody: "Food and Drug Administration",
			States:         models.Unrestricted(),
			Industries:     models.RestrictedTo("Food & Beverage"),
			BusinessTypes:  models.Unrestricted(),
			ComplianceRequirements: []string{
				"Implement food safety plan based on hazard analysis",
				"Conduct regular monitoring and verification activities",
				"Maintain detailed records of food safety activities",
				"Register food facilities with FDA",
				"Comply with supplier verification requirements",
			},
			Penalties: "Warning letters, import alerts, consent decrees, seizure of products, injunctions, and criminal prosecution with fines up to $500,000 per individual violation.",
		},
		{
			Title:          "Sarbanes-Oxley Act (SOX)",
			Description:    "Federal law establishing enhanced standards for public company boards, management, and accounting firms to protect shareholders and the general public from accounting errors and fraudulent practices.",
			RegulatoryBody: "Securities and Exchange Commission",
			States:         models.Unrestricted(),
			Industries:     models.RestrictedTo("Banking & Finance"),
			BusinessTypes:  models.RestrictedTo("Corporation"),
			ComplianceRequirements: []string{
				"Establish internal controls over financial reporting",
				"CEO and CFO must certify financial statements",
				"Maintain audit committee independence",
				"Implement whistleblower protections",
				"Retain audit records for 7 years",
			},
			Penalties: "Fines up to $5 million and imprisonment up to 20 years for knowingly certifying false financial reports.",
		},
	}
}
