// Package i18n resolves user-facing messages for the supported locales.
package i18n

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ko"
	ut "github.com/go-playground/universal-translator"
)

// ContextKey is the request-context key holding the resolved locale.
const ContextKey = "locale"

// Message keys.
const (
	KeyBadRequest       = "badRequest"
	KeyEmailDuplicate   = "email.duplicate"
	KeyUserNotFound     = "user.notFound"
	KeyLoginFail        = "login.fail"
	KeyEmailNotBlank    = "email.notBlank"
	KeyEmailFormat      = "email.format"
	KeyPasswordNotBlank = "password.notBlank"
	KeyPasswordPattern  = "password.pattern"
	KeyUnauthorized     = "unauthorized"
	KeyInternal         = "internal"
)

var messages = map[string]map[string]string{
	"ko": {
		KeyBadRequest:       "클라이언트의 잘못된 요청입니다.",
		KeyEmailDuplicate:   "이미 사용 중인 이메일입니다.",
		KeyUserNotFound:     "존재하지 않는 사용자입니다.",
		KeyLoginFail:        "이메일 또는 비밀번호가 일치하지 않습니다.",
		KeyEmailNotBlank:    "이메일을 입력해주세요.",
		KeyEmailFormat:      "이메일 형식이 올바르지 않습니다.",
		KeyPasswordNotBlank: "비밀번호를 입력해주세요.",
		KeyPasswordPattern:  "비밀번호는 영문, 숫자, 특수문자를 포함한 8~16자여야 합니다.",
		KeyUnauthorized:     "로그인이 필요합니다.",
		KeyInternal:         "서버 내부 오류가 발생했습니다.",
	},
	"en": {
		KeyBadRequest:       "Bad request from the client.",
		KeyEmailDuplicate:   "This email is already in use.",
		KeyUserNotFound:     "User not found.",
		KeyLoginFail:        "Email or password does not match.",
		KeyEmailNotBlank:    "Please enter your email.",
		KeyEmailFormat:      "Invalid email format.",
		KeyPasswordNotBlank: "Please enter your password.",
		KeyPasswordPattern:  "Password must be 8-16 characters with letters, numbers and special characters.",
		KeyUnauthorized:     "Login required.",
		KeyInternal:         "An internal server error occurred.",
	},
}

// Bundle holds the translators for every supported locale.
type Bundle struct {
	uni      *ut.UniversalTranslator
	fallback string
}

// New builds a Bundle whose fallback is defaultLocale.
func New(defaultLocale string) (*Bundle, error) {
	supported := []locales.Translator{ko.New(), en.New()}

	var fallback locales.Translator
	for _, l := range supported {
		if l.Locale() == normalize(defaultLocale) {
			fallback = l
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("unsupported default locale %q", defaultLocale)
	}

	uni := ut.New(fallback, supported...)
	for locale, texts := range messages {
		trans, _ := uni.GetTranslator(locale)
		for key, text := range texts {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}

	return &Bundle{uni: uni, fallback: fallback.Locale()}, nil
}

// Default returns the fallback locale.
func (b *Bundle) Default() string {
	return b.fallback
}

// Supports reports whether locale has its own translations.
func (b *Bundle) Supports(locale string) bool {
	_, ok := messages[normalize(locale)]
	return ok
}

// Resolve returns the first supported locale among candidates, or the
// default when none is supported.
func (b *Bundle) Resolve(candidates ...string) string {
	for _, c := range candidates {
		if b.Supports(c) {
			return normalize(c)
		}
	}
	return b.fallback
}

// T translates key for locale. Unknown locales use the default; unknown
// keys are returned as-is.
func (b *Bundle) T(locale, key string) string {
	trans, _ := b.uni.GetTranslator(b.Resolve(locale))
	if text, err := trans.T(key); err == nil {
		return text
	}
	fb, _ := b.uni.GetTranslator(b.fallback)
	if text, err := fb.T(key); err == nil {
		return text
	}
	return key
}

// normalize maps tags like "en-US", "EN" or "ko_KR" to their language.
func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return tag
}
