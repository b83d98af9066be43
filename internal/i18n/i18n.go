package i18n

import "strings"

// translations maps language -> message code -> user-facing text.
// English is the reference; French mirrors the set for parity.
var translations = map[string]map[string]string{
	"en": {
		"login_failed":                   "Login failed",
		"registration_failed":            "Registration failed",
		"profile_creation_failed":        "Profile creation failed",
		"failed_to_fetch_clients":        "Failed to fetch clients.",
		"failed_to_add_client":           "Please fill in all required fields.",
		"failed_to_edit_client":          "Failed to edit a client.",
		"failed_to_delete_client":        "Failed to delete the client.",
		"failed_to_fetch_invoices":       "Failed to fetch invoices.",
		"failed_to_add_invoice":          "Failed to add invoice, please try again.",
		"failed_to_update_invoice":       "Failed to update invoice.",
		"failed_to_delete_invoice":       "Failed to delete the invoice.",
		"failed_to_fetch_invoice_pdf":    "Failed to fetch the invoice document.",
		"failed_to_fetch_company":        "Failed to fetch company details.",
		"failed_to_update_company":       "Failed to update company details.",
		"failed_to_update_picture":       "Failed to update profile picture.",
		"failed_to_delete_picture":       "Failed to delete profile picture.",
		"password_changed":               "Password changed successfully",
		"password_change_failed":         "Failed to change password.",
		"passwords_do_not_match":         "New passwords do not match.",
		"no_token":                       "No authentication token found.",
		"session_expired":                "Your session has expired, please log in again.",
		"action_in_progress":             "This action is already in progress.",
		"confirm_finish_onboarding":      "Finish and create the profile?",
		"confirm_delete_client":          "Are you sure you want to delete this client?",
		"confirm_delete_invoice":         "Are you sure you want to delete this invoice?",
		"confirm_delete_account":         "Are you sure you want to delete your account? This action cannot be undone.",
	},
	"fr": {
		"login_failed":                   "Échec de la connexion",
		"registration_failed":            "Échec de l'inscription",
		"profile_creation_failed":        "Échec de la création du profil",
		"failed_to_fetch_clients":        "Impossible de récupérer les clients.",
		"failed_to_add_client":           "Veuillez remplir tous les champs obligatoires.",
		"failed_to_edit_client":          "Impossible de modifier le client.",
		"failed_to_delete_client":        "Impossible de supprimer le client.",
		"failed_to_fetch_invoices":       "Impossible de récupérer les factures.",
		"failed_to_add_invoice":          "Impossible d'ajouter la facture, veuillez réessayer.",
		"failed_to_update_invoice":       "Impossible de mettre à jour la facture.",
		"failed_to_delete_invoice":       "Impossible de supprimer la facture.",
		"failed_to_fetch_invoice_pdf":    "Impossible de récupérer le document de facture.",
		"failed_to_fetch_company":        "Impossible de récupérer les informations de la société.",
		"failed_to_update_company":       "Impossible de mettre à jour les informations de la société.",
		"failed_to_update_picture":       "Impossible de mettre à jour le logo.",
		"failed_to_delete_picture":       "Impossible de supprimer le logo.",
		"password_changed":               "Mot de passe modifié avec succès",
		"password_change_failed":         "Impossible de modifier le mot de passe.",
		"passwords_do_not_match":         "Les nouveaux mots de passe ne correspondent pas.",
		"no_token":                       "Aucun jeton d'authentification trouvé.",
		"session_expired":                "Votre session a expiré, veuillez vous reconnecter.",
		"action_in_progress":             "Cette action est déjà en cours.",
		"confirm_finish_onboarding":      "Terminer et créer le profil ?",
		"confirm_delete_client":          "Voulez-vous vraiment supprimer ce client ?",
		"confirm_delete_invoice":         "Voulez-vous vraiment supprimer cette facture ?",
		"confirm_delete_account":         "Voulez-vous vraiment supprimer votre compte ? Cette action est irréversible.",
	},
}

// DetectLanguage picks a supported language from a locale string such as
// "en-US,en;q=0.9" or $LANG. Defaults to English.
func DetectLanguage(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if strings.HasPrefix(l, "fr") {
		return "fr"
	}
	return "en"
}

// T translates a message code. Unknown languages fall back to English;
// unknown codes fall back to the code itself.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := translations["en"][code]; ok {
		return s
	}
	return code
}
