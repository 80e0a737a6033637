// Package i18n provides internationalization support for the terminal service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "fr-FR,fr;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "fr" from "fr-FR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations. The café
// chain operates in French-speaking markets, so French ships alongside
// English.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":                "Invalid request",
			"error.invalid_request_body":           "Invalid request body",
			"error.internal_error":                 "An unexpected error occurred",
			"error.unauthorized":                   "Unauthorized",
			"error.token_required":                 "Session token is required",
			"error.invalid_token":                  "Invalid or expired session token",
			"error.session_not_found":              "Session expired, please open a new one",
			"error.admin_required":                 "Administrator login required",
			"error.not_found":                      "Not found",
			"error.rate_limit_exceeded":            "Too many requests, please try again later",
			"error.network":                        "Could not reach the server. Please try again.",
			"error.server":                         "Unknown server error.",
			"error.cart_empty":                     "The cart is empty",
			"error.validation.quantity_positive":   "Quantity must be a positive integer",
			"error.validation.date_required":       "Restock date is required",
			"error.validation.unknown_operation":   "Unknown restock operation",
			"error.restock_in_flight":              "A restock is already being submitted",

			// Success messages
			"success.order_submitted":   "Order submitted successfully",
			"success.restock_submitted": "Stock adjustment recorded",
		},
		"fr": {
			// Error messages
			"error.invalid_request":                "Requête invalide",
			"error.invalid_request_body":           "Corps de requête invalide",
			"error.internal_error":                 "Une erreur inattendue s'est produite",
			"error.unauthorized":                   "Non autorisé",
			"error.token_required":                 "Jeton de session requis",
			"error.invalid_token":                  "Jeton de session invalide ou expiré",
			"error.session_not_found":              "Session expirée, veuillez en ouvrir une nouvelle",
			"error.admin_required":                 "Connexion administrateur requise",
			"error.not_found":                      "Introuvable",
			"error.rate_limit_exceeded":            "Trop de requêtes, veuillez réessayer plus tard",
			"error.network":                        "Impossible de joindre le serveur. Veuillez réessayer.",
			"error.server":                         "Erreur serveur inconnue.",
			"error.cart_empty":                     "Le panier est vide",
			"error.validation.quantity_positive":   "La quantité doit être un entier positif",
			"error.validation.date_required":       "La date de réapprovisionnement est requise",
			"error.validation.unknown_operation":   "Opération de réapprovisionnement inconnue",
			"error.restock_in_flight":              "Un réapprovisionnement est déjà en cours d'envoi",

			// Success messages
			"success.order_submitted":   "Commande envoyée avec succès",
			"success.restock_submitted": "Ajustement de stock enregistré",
		},
	}
}
