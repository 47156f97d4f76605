package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown = "UNKNOWN"

	CodeEventNotActive     = "EVENT_NOT_ACTIVE"
	CodeEventChoiceInvalid = "EVENT_CHOICE_OUT_OF_RANGE"
	CodeEventNoChoices     = "EVENT_HAS_NO_CHOICES"

	CodeCatalogTitleEmpty         = "CATALOG_TITLE_EMPTY"
	CodeCatalogUnknownCategory    = "CATALOG_UNKNOWN_CATEGORY"
	CodeCatalogUnknownResource    = "CATALOG_UNKNOWN_RESOURCE"
	CodeCatalogInvalidValueRange  = "CATALOG_INVALID_VALUE_RANGE"
	CodeCatalogInvalidSuccessRate = "CATALOG_INVALID_SUCCESS_RATE"
	CodeCatalogInvalidDuration    = "CATALOG_INVALID_DURATION"
	CodeCatalogAutoApplyChoices   = "CATALOG_AUTO_APPLY_HAS_CHOICES"
	CodeCatalogInvalidChoice      = "CATALOG_INVALID_CHOICE"
	CodeCatalogDuplicateTemplate  = "CATALOG_DUPLICATE_TEMPLATE"

	CodeLedgerNotFound     = "LEDGER_NOT_FOUND"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeSchemaUnsupported  = "LEDGER_SCHEMA_UNSUPPORTED"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "Something went wrong",

		// Event lifecycle errors
		CodeEventNotActive:     "Event {{.EventID}} is not active",
		CodeEventChoiceInvalid: "Choice {{.ChoiceIndex}} is out of range for event {{.EventID}}",
		CodeEventNoChoices:     "Event {{.EventID}} has no choices to resolve",

		// Catalog errors
		CodeCatalogTitleEmpty:         "Template {{.TemplateID}} has an empty title",
		CodeCatalogUnknownCategory:    "Template {{.TemplateID}} has unknown category {{.Category}}",
		CodeCatalogUnknownResource:    "Template {{.TemplateID}} touches unknown resource {{.Resource}}",
		CodeCatalogInvalidValueRange:  "Template {{.TemplateID}} has min value above max value",
		CodeCatalogInvalidSuccessRate: "Template {{.TemplateID}} has a success rate outside [0,1]",
		CodeCatalogInvalidDuration:    "Template {{.TemplateID}} needs a positive duration",
		CodeCatalogAutoApplyChoices:   "Template {{.TemplateID}} is auto-apply and cannot define choices",
		CodeCatalogInvalidChoice:      "Template {{.TemplateID}} has an invalid choice",
		CodeCatalogDuplicateTemplate:  "Template id {{.TemplateID}} is defined more than once",

		// Storage errors
		CodeLedgerNotFound:     "No event ledger found for player {{.PlayerID}}",
		CodePersistenceFailure: "Could not persist the event ledger",
		CodeSchemaUnsupported:  "Ledger schema version {{.Version}} is not supported",
	},
}
