package domain

const unknownDescription = "Unknown"

// Rule names a field normaliser.
type Rule string

// Built-in rules, one per semantic field type.
const (
	// RuleName title-cases personal names.
	RuleName Rule = "name"

	// RuleCity lower-cases then title-cases city names.
	RuleCity Rule = "city"

	// RuleOrganization title-cases and applies the alias table.
	RuleOrganization Rule = "organization"

	// RuleState keeps the first two characters, upper-cased.
	RuleState Rule = "state"

	// RulePostal keeps five-character US zip prefixes.
	RulePostal Rule = "postal"

	// RulePhone formats NANP phone and fax numbers.
	RulePhone Rule = "phone"

	// RuleCountry collapses U-prefixed countries to USA.
	RuleCountry Rule = "country"

	// RuleAddress title-cases street address lines.
	RuleAddress Rule = "address"
)

// IsValid returns true if the rule is one of the built-in rules.
func (r Rule) IsValid() bool {
	switch r {
	case RuleName, RuleCity, RuleOrganization, RuleState,
		RulePostal, RulePhone, RuleCountry, RuleAddress:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Rule) String() string {
	return string(r)
}

// Description returns a human-readable description of the rule.
func (r Rule) Description() string {
	switch r {
	case RuleName:
		return "Title case"
	case RuleCity:
		return "Lower case, then title case"
	case RuleOrganization:
		return "Title case with organization aliases"
	case RuleState:
		return "First two characters, upper case"
	case RulePostal:
		return "Five digit US zip, blank when short or spaced"
	case RulePhone:
		return "NANP formatting (NXX-NXX-XXXX)"
	case RuleCountry:
		return "USA for U-prefixed values, otherwise upper case"
	case RuleAddress:
		return "Title case with preposition and OhioNET fixes"
	default:
		return unknownDescription
	}
}

// AllRules returns the built-in rules in documentation order.
func AllRules() []Rule {
	return []Rule{
		RuleName, RuleCity, RuleOrganization, RuleState,
		RulePostal, RulePhone, RuleCountry, RuleAddress,
	}
}

// ColumnBinding routes one roster column to a rule.
type ColumnBinding struct {
	Column string `validate:"notblank"`
	Rule   Rule   `validate:"rule"`
}

// CleanSettings holds everything the pipeline driver needs for one run.
type CleanSettings struct {
	// InputPath is the raw roster export.
	InputPath string `validate:"notblank"`

	// OutputPath receives the cleaned roster. The extension picks the writer.
	OutputPath string `validate:"notblank,nefield=InputPath"`

	// WriteIndex prepends an unnamed row-number column to the output,
	// matching the layout of earlier cleaned rosters.
	WriteIndex bool

	// Strict aborts the run when a drop column is absent from the input.
	Strict bool

	// NormalizeUnicode applies NFC to every cell on read. Off by default so
	// decomposed text passes through the normalisers unchanged.
	NormalizeUnicode bool

	// DropColumns never reach the normalisers or the output.
	DropColumns []string `validate:"dive,notblank"`

	// MissingMarkers are cell texts read as missing values.
	MissingMarkers []string

	// Bindings are applied in order.
	Bindings []ColumnBinding `validate:"-"`

	// OrganizationAliases extend or override the built-in alias table.
	OrganizationAliases map[string]string
}

// Default file locations, relative to the working directory.
const (
	DefaultInputPath  = "data/raw/ALAOdata.csv"
	DefaultOutputPath = "data/processed/ALAOdata-clean.csv"
)

// DefaultCleanSettings returns the settings for the standard roster export.
func DefaultCleanSettings() CleanSettings {
	return CleanSettings{
		InputPath:        DefaultInputPath,
		OutputPath:       DefaultOutputPath,
		WriteIndex:       true,
		Strict:           true,
		NormalizeUnicode: false,
		DropColumns:      DefaultDropColumns(),
		MissingMarkers:   DefaultMissingMarkers(),
		Bindings:         DefaultBindings(),
	}
}

// DefaultDropColumns lists the membership-history, access-control, timestamp,
// financial and free-text columns removed before cleaning.
func DefaultDropColumns() []string {
	return []string{
		"Password",
		"Interest Groups",
		"ACRL Member",
		"Membership History (2010 & prior)",
		"Retired",
		"Group participation",
		"Current Leadership Positions",
		"Past Leadership Positions",
		"Current Committees",
		"Past Committees",
		"ALAO Awards",
		"Directory listing text",
		"Expected Graduation Date",
		"School Attending",
		"Archived",
		"Subscribed to emails",
		"Subscription source",
		"Opted in",
		"Event announcements",
		"Member emails and newsletters",
		"Administration access",
		"Created on",
		"Profile last updated",
		"Last login",
		"Updated by",
		"Balance",
		"Total donated",
		"Membership enabled",
		"Membership level",
		"Member since",
		"Renewal due",
		"Renewal date last changed",
		"Level last changed",
		"Access to profile by others",
		"Details to show",
		"Photo albums enabled",
		"Member bundle ID or email",
		"Member role",
		"Work Email Address",
		"Home Email Address",
		"Notes",
	}
}

// DefaultMissingMarkers returns the cell texts treated as not available.
// The set matches what spreadsheet exports and pandas treat as NA.
func DefaultMissingMarkers() []string {
	return []string{
		"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null",
	}
}

// DefaultBindings routes the standard roster columns to their rules.
func DefaultBindings() []ColumnBinding {
	return []ColumnBinding{
		{Column: "First name", Rule: RuleName},
		{Column: "Last name", Rule: RuleName},
		{Column: "Work City", Rule: RuleCity},
		{Column: "Organization", Rule: RuleOrganization},
		{Column: "Work Province/State", Rule: RuleState},
		{Column: "Work Postal Code", Rule: RulePostal},
		{Column: "Preferred Phone", Rule: RulePhone},
		{Column: "Work Phone", Rule: RulePhone},
		{Column: "Work Cellular Phone", Rule: RulePhone},
		{Column: "Work Fax Number", Rule: RulePhone},
		{Column: "Home Phone", Rule: RulePhone},
		{Column: "Home Cellular Phone", Rule: RulePhone},
		{Column: "Home Fax Number", Rule: RulePhone},
		{Column: "Home City", Rule: RuleCity},
		{Column: "Home Province/State", Rule: RuleState},
		{Column: "Home Postal Code", Rule: RulePostal},
		{Column: "Work Country", Rule: RuleCountry},
		{Column: "Home Country", Rule: RuleCountry},
		{Column: "Work Address 1", Rule: RuleAddress},
		{Column: "Work Address 2", Rule: RuleAddress},
		{Column: "Home Address 1", Rule: RuleAddress},
		{Column: "Home Address 2", Rule: RuleAddress},
	}
}
