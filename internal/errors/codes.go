// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Event lifecycle errors
	CodeEventNotActive     Code = "EVENT_NOT_ACTIVE"
	CodeEventChoiceInvalid Code = "EVENT_CHOICE_OUT_OF_RANGE"
	CodeEventNoChoices     Code = "EVENT_HAS_NO_CHOICES"

	// Catalog errors
	CodeCatalogTitleEmpty         Code = "CATALOG_TITLE_EMPTY"
	CodeCatalogUnknownCategory    Code = "CATALOG_UNKNOWN_CATEGORY"
	CodeCatalogUnknownResource    Code = "CATALOG_UNKNOWN_RESOURCE"
	CodeCatalogInvalidValueRange  Code = "CATALOG_INVALID_VALUE_RANGE"
	CodeCatalogInvalidSuccessRate Code = "CATALOG_INVALID_SUCCESS_RATE"
	CodeCatalogInvalidDuration    Code = "CATALOG_INVALID_DURATION"
	CodeCatalogAutoApplyChoices   Code = "CATALOG_AUTO_APPLY_HAS_CHOICES"
	CodeCatalogInvalidChoice      Code = "CATALOG_INVALID_CHOICE"
	CodeCatalogDuplicateTemplate  Code = "CATALOG_DUPLICATE_TEMPLATE"

	// Storage errors
	CodeLedgerNotFound     Code = "LEDGER_NOT_FOUND"
	CodePersistenceFailure Code = "PERSISTENCE_FAILURE"
	CodeSchemaUnsupported  Code = "LEDGER_SCHEMA_UNSUPPORTED"
)
