package validators

import "strings"

// IsEmailValid is a syntactic check only; deliverability is the SMTP
// collaborator's problem.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	return true
}
