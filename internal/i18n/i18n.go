// Package i18n holds the response message catalogs. Translations are keyed
// by the `language` request header; anything outside the supported set falls
// back to English.
package i18n

const Fallback = "en"

var messages = map[string]map[string]string{
	"en": {
		"USER_REGISTERED":        "User successfully registered",
		"LOGIN_SUCCESS":          "Login successful",
		"INVALID_CREDENTIALS":    "Invalid email or password",
		"EMAIL_TAKEN":            "Email already in use",
		"LIST_OF_USERS":          "List of users",
		"USER_DETAIL":            "User detail",
		"USER_NOT_FOUND":         "User not found",
		"USER_UPDATED":           "User updated",
		"USER_DELETED":           "User deleted",
		"LIST_OF_EXERCISES":      "List of exercises",
		"EXERCISE_CREATED":       "Exercise created",
		"EXERCISE_UPDATED":       "Exercise updated",
		"EXERCISE_DELETED":       "Exercise deleted",
		"EXERCISE_NOT_FOUND":     "Exercise not found",
		"EXERCISE_NOT_IN_PROGRAM": "Exercise is not in this program",
		"EXERCISE_ALREADY_ASSIGNED": "Exercise is already in this program",
		"EXERCISE_ASSIGNED":      "Exercise assigned to program",
		"EXERCISE_UNASSIGNED":    "Exercise removed from program",
		"LIST_OF_PROGRAMS":       "List of programs",
		"PROGRAM_CREATED":        "Program created",
		"PROGRAM_NOT_FOUND":      "Program not found",
		"COMPLETED_CREATED":      "Completed exercise recorded",
		"COMPLETED_DELETED":      "Completed exercise deleted",
		"COMPLETED_NOT_FOUND":    "Completed exercise not found",
		"LIST_OF_COMPLETED":      "List of completed exercises",
		"UNAUTHORIZED":           "Unauthorized",
		"FORBIDDEN":              "Forbidden: insufficient role",
		"SOMETHING_WENT_WRONG":   "Something went wrong",
	},
	"sk": {
		"USER_REGISTERED":        "Používateľ bol úspešne zaregistrovaný",
		"LOGIN_SUCCESS":          "Prihlásenie úspešné",
		"INVALID_CREDENTIALS":    "Nesprávny e-mail alebo heslo",
		"EMAIL_TAKEN":            "E-mail sa už používa",
		"LIST_OF_USERS":          "Zoznam používateľov",
		"USER_DETAIL":            "Detail používateľa",
		"USER_NOT_FOUND":         "Používateľ sa nenašiel",
		"USER_UPDATED":           "Používateľ bol aktualizovaný",
		"USER_DELETED":           "Používateľ bol odstránený",
		"LIST_OF_EXERCISES":      "Zoznam cvičení",
		"EXERCISE_CREATED":       "Cvičenie bolo vytvorené",
		"EXERCISE_UPDATED":       "Cvičenie bolo aktualizované",
		"EXERCISE_DELETED":       "Cvičenie bolo odstránené",
		"EXERCISE_NOT_FOUND":     "Cvičenie sa nenašlo",
		"EXERCISE_NOT_IN_PROGRAM": "Cvičenie nie je v tomto programe",
		"EXERCISE_ALREADY_ASSIGNED": "Cvičenie už je v tomto programe",
		"EXERCISE_ASSIGNED":      "Cvičenie bolo priradené k programu",
		"EXERCISE_UNASSIGNED":    "Cvičenie bolo odstránené z programu",
		"LIST_OF_PROGRAMS":       "Zoznam programov",
		"PROGRAM_CREATED":        "Program bol vytvorený",
		"PROGRAM_NOT_FOUND":      "Program sa nenašiel",
		"COMPLETED_CREATED":      "Dokončené cvičenie bolo zaznamenané",
		"COMPLETED_DELETED":      "Dokončené cvičenie bolo odstránené",
		"COMPLETED_NOT_FOUND":    "Dokončené cvičenie sa nenašlo",
		"LIST_OF_COMPLETED":      "Zoznam dokončených cvičení",
		"UNAUTHORIZED":           "Neautorizovaný prístup",
		"FORBIDDEN":              "Zakázané: nedostatočná rola",
		"SOMETHING_WENT_WRONG":   "Niečo sa pokazilo",
	},
}

// Pick resolves a `language` header value to a supported language.
func Pick(header string) string {
	if _, ok := messages[header]; ok {
		return header
	}
	return Fallback
}

// T translates key for lang, falling back to English, then to the key itself.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[Fallback][key]; ok {
		return s
	}
	return key
}
