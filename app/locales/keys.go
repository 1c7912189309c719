package locales

import "github.com/matiboux/totp-online/core/i18n"

// Translation keys are the English source strings.
const (
	// Index
	KeyIndexDescription = "Online conversion tool for environment files."

	// AppForm
	KeyConvert        = "Convert"
	KeyCopyCode       = "Copy TOTP code"
	KeyCopySecret     = "Copy TOTP Secret"
	KeyCopyURI        = "Copy TOTP URI"
	KeyCreateFailed   = "Failed to create TOTP object"
	KeyFillForm       = "Fill the form to generate a TOTP code."
	KeyInvalidType    = "Invalid TOTP object type"
	KeyPasteSecret    = "Paste TOTP Secret"
	KeyPasteURI       = "Paste TOTP URI"
	KeyReset          = "Reset"
	KeyAlgorithm      = "TOTP Algorithm"
	KeyCounter        = "TOTP Counter"
	KeyDigits         = "TOTP Digits"
	KeyPeriod         = "TOTP Period (seconds)"
	KeyRemainingTime  = "TOTP Remaining Time"
	KeySecretRequired = "TOTP secret is required"
	KeySecret         = "TOTP Secret"
	KeyURIRequired    = "TOTP URI is required"
	KeyURI            = "TOTP URI"

	// Footer
	KeyOpenSource       = "Open source project"
	KeySeeSourceOn      = "See the source code on"
	KeyBuiltWith        = "Built with"
	KeyServedBy         = "served by"
	KeyMadeWithLoveBy   = "Made with love by"
	KeyDataPrivacy      = "Data privacy"
	KeyNoDataCollected  = "No data is collected or processed over the network or on any server."
	KeyProcessedLocally = "All data is processed locally in your browser, and stays on your own device."
	KeyNoCookies        = "This website uses no cookies and does no tracking."
)

// Keys is the canonical key set of the app namespace. Every locale defines
// exactly these keys.
var Keys = i18n.MustKeySet(
	// Index
	KeyIndexDescription,
	// AppForm
	KeyConvert,
	KeyCopyCode,
	KeyCopySecret,
	KeyCopyURI,
	KeyCreateFailed,
	KeyFillForm,
	KeyInvalidType,
	KeyPasteSecret,
	KeyPasteURI,
	KeyReset,
	KeyAlgorithm,
	KeyCounter,
	KeyDigits,
	KeyPeriod,
	KeyRemainingTime,
	KeySecretRequired,
	KeySecret,
	KeyURIRequired,
	KeyURI,
	// Footer
	KeyOpenSource,
	KeySeeSourceOn,
	KeyBuiltWith,
	KeyServedBy,
	KeyMadeWithLoveBy,
	KeyDataPrivacy,
	KeyNoDataCollected,
	KeyProcessedLocally,
	KeyNoCookies,
)
