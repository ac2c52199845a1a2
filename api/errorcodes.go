package api

const (
	CategoryDatabase = ErrorCategory("Database")
	CategoryUser     = ErrorCategory("User") // used for errors related to user input, validation, etc.
	CategoryNotFound = ErrorCategory("NotFound")
	CategoryInternal = ErrorCategory("Internal") // used for internal server errors, not related to bad user input
)

const (
	// General

	ErrorCreateFailure         = ErrorKey("ErrorCreateFailure")
	ErrorGenericInternalServer = ErrorKey("ErrorGenericInternalServer")
	ErrorForeignKeyViolation   = ErrorKey("ErrorForeignKeyViolation")
	ErrorInvalidRequestBody    = ErrorKey("ErrorInvalidRequestBody")
	ErrorNoRows                = ErrorKey("ErrorNoRows")
	ErrorQueryFailure          = ErrorKey("ErrorQueryFailure")
	ErrorSaveFailure           = ErrorKey("ErrorSaveFailure")
	ErrorTransactionNotFound   = ErrorKey("ErrorTransactionNotFound")
	ErrorUniqueKeyViolation    = ErrorKey("ErrorUniqueKeyViolation")
	ErrorUnknown               = ErrorKey("ErrorUnknown")
	ErrorValidation            = ErrorKey("ErrorValidation")

	// Calculation request
	ErrorInvalidDate            = ErrorKey("ErrorInvalidDate")
	ErrorInvalidPolicyType      = ErrorKey("ErrorInvalidPolicyType")
	ErrorInvalidTransactionType = ErrorKey("ErrorInvalidTransactionType")
	ErrorMissingLoanAmount      = ErrorKey("ErrorMissingLoanAmount")
	ErrorMissingPurchasePrice   = ErrorKey("ErrorMissingPurchasePrice")
	ErrorMissingState           = ErrorKey("ErrorMissingState")
	ErrorMissingUnderwriter     = ErrorKey("ErrorMissingUnderwriter")
	ErrorNegativeAmount         = ErrorKey("ErrorNegativeAmount")

	// Rate configuration
	ErrorHoldOpenNotSupported   = ErrorKey("ErrorHoldOpenNotSupported")
	ErrorLenderRatesNotDefined  = ErrorKey("ErrorLenderRatesNotDefined")
	ErrorUnknownUnderwriter     = ErrorKey("ErrorUnknownUnderwriter")
	ErrorUnsupportedState       = ErrorKey("ErrorUnsupportedState")
	ErrorRateBookLoadFailure    = ErrorKey("ErrorRateBookLoadFailure")
	ErrorRateSeedParseFailure   = ErrorKey("ErrorRateSeedParseFailure")
	ErrorEndorsementSeedFailure = ErrorKey("ErrorEndorsementSeedFailure")
)
