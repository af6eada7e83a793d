package helpers

import "golang.org/x/crypto/bcrypt"

// CredentialMatcher decides how passwords are persisted and compared.
// The account contract is exact value equality, so PlainMatcher is the
// default; BcryptMatcher slots in for deployments that store hashes
// without changing any service control flow.
type CredentialMatcher interface {
	// Store returns the representation persisted at account creation.
	Store(plain string) (string, error)
	// Match compares a stored password against a supplied one.
	Match(stored, supplied string) bool
}

type PlainMatcher struct{}

func (PlainMatcher) Store(plain string) (string, error) { return plain, nil }
func (PlainMatcher) Match(stored, supplied string) bool { return stored == supplied }

type BcryptMatcher struct{}

func (BcryptMatcher) Store(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptMatcher) Match(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// MatcherFor maps the PASSWORD_SCHEME config value to a matcher.
// Unknown values fall back to plain comparison.
func MatcherFor(scheme string) CredentialMatcher {
	if scheme == "bcrypt" {
		return BcryptMatcher{}
	}
	return PlainMatcher{}
}
