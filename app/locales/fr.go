package locales

import "github.com/matiboux/totp-online/core/i18n"

// French returns the fr dictionary.
func French() i18n.Dictionary {
	return i18n.Dictionary{
		// Index
		KeyIndexDescription: "Outil de conversion en ligne pour les fichiers d'environnement.",
		// AppForm
		KeyConvert:        "Convertir",
		KeyCopyCode:       "Copier le code TOTP",
		KeyCopySecret:     "Copier le secret TOTP",
		KeyCopyURI:        "Copier l'URI TOTP",
		KeyCreateFailed:   "Échec de la création de l'objet TOTP",
		KeyFillForm:       "Remplissez le formulaire pour générer un code TOTP.",
		KeyInvalidType:    "Type d'objet TOTP invalide",
		KeyPasteSecret:    "Coller le secret TOTP",
		KeyPasteURI:       "Coller l'URI TOTP",
		KeyReset:          "Réinitialiser",
		KeyAlgorithm:      "Algorithme TOTP",
		KeyCounter:        "Compteur TOTP",
		KeyDigits:         "Chiffres TOTP",
		KeyPeriod:         "Période TOTP (secondes)",
		KeyRemainingTime:  "Temps restant TOTP",
		KeySecretRequired: "Le secret TOTP est requis",
		KeySecret:         "Secret TOTP",
		KeyURIRequired:    "L'URI TOTP est requise",
		KeyURI:            "URI TOTP",
		// Footer
		KeyOpenSource:       "Projet open source",
		KeySeeSourceOn:      "Voir le code source sur",
		KeyBuiltWith:        "Construit avec",
		KeyServedBy:         "servi par",
		KeyMadeWithLoveBy:   "Créé avec amour par",
		KeyDataPrivacy:      "Confidentialité des données",
		KeyNoDataCollected:  "Aucune donnée n'est collectée ou traitée sur le réseau ou sur un serveur.",
		KeyProcessedLocally: "Toutes les données sont traitées localement dans votre navigateur et restent sur votre propre appareil.",
		KeyNoCookies:        "Ce site web n'utilise pas de cookies et ne fait pas de suivi.",
	}
}
